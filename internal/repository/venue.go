package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/HallBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type VenueRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewVenueRepo(db *dbpg.DB) *VenueRepository {
	return &VenueRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *VenueRepository) Create(ctx context.Context, v *domain.Venue) error {
	query := `INSERT INTO venues (id, name, description, location, image_url, capacity,
				hourly_rate, facilities, available, owner_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.Name, v.Description, v.Location, v.ImageURL, v.Capacity,
		v.HourlyRate, pq.Array(domain.FacilityStrings(v.Facilities)),
		v.Available, v.OwnerID, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venue: %w", err)
	}

	return nil
}

func (r *VenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	query := `SELECT id, name, description, location, image_url, capacity,
					 hourly_rate, facilities, available, owner_id, created_at, updated_at
			  FROM venues
			  WHERE id=$1 AND deleted_at IS NULL`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get venue: %w", err)
	}

	v, err := scanVenue(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("scan venue: %w", err)
	}

	return v, nil
}

func (r *VenueRepository) List(ctx context.Context, onlyAvailable bool) ([]*domain.Venue, error) {
	query := `SELECT id, name, description, location, image_url, capacity,
					 hourly_rate, facilities, available, owner_id, created_at, updated_at
			  FROM venues
			  WHERE deleted_at IS NULL`
	if onlyAvailable {
		query += ` AND available`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	var res []*domain.Venue
	for rows.Next() {
		v, err := scanVenue(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		res = append(res, v)
	}

	return res, rows.Err()
}

func (r *VenueRepository) Update(ctx context.Context, v *domain.Venue) error {
	query := `UPDATE venues
			  SET name=$2, description=$3, location=$4, image_url=$5, capacity=$6,
				  hourly_rate=$7, facilities=$8, available=$9, updated_at=$10
			  WHERE id=$1 AND deleted_at IS NULL`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		v.ID, v.Name, v.Description, v.Location, v.ImageURL, v.Capacity,
		v.HourlyRate, pq.Array(domain.FacilityStrings(v.Facilities)),
		v.Available, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update venue: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("venue rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrVenueNotFound
	}

	return nil
}

// Delete marks the venue deleted. The row stays so booking history keeps a
// valid venue reference.
func (r *VenueRepository) Delete(ctx context.Context, id string) error {
	query := `UPDATE venues
			  SET available=FALSE, deleted_at=now(), updated_at=now()
			  WHERE id=$1 AND deleted_at IS NULL`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete venue: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("venue rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrVenueNotFound
	}

	return nil
}

func scanVenue(scan func(dest ...any) error) (*domain.Venue, error) {
	var v domain.Venue
	var facilities []string
	if err := scan(
		&v.ID, &v.Name, &v.Description, &v.Location, &v.ImageURL, &v.Capacity,
		&v.HourlyRate, pq.Array(&facilities), &v.Available, &v.OwnerID,
		&v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}

	v.Facilities = make([]domain.FacilityTag, len(facilities))
	for i, f := range facilities {
		v.Facilities[i] = domain.FacilityTag(f)
	}

	return &v, nil
}
