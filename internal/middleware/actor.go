package middleware

import (
	"context"

	"github.com/wb-go/wbf/ginext"

	"github.com/stpnv0/HallBooker/internal/domain"
)

const (
	actorHeader = "X-User-ID"
	actorKey    = "actor"
)

type actorResolver interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Actor resolves the caller's identity and role from the X-User-ID header.
// Resolution failures are not fatal here: handlers that require an actor
// reject the request themselves.
func Actor(users actorResolver) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(actorHeader)
		if id != "" {
			if user, err := users.GetByID(c.Request.Context(), id); err == nil {
				c.Set(actorKey, domain.Actor{ID: user.ID, Role: user.Role})
			}
		}

		c.Next()
	}
}

// ActorFrom returns the actor the Actor middleware resolved, if any.
func ActorFrom(c *ginext.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
