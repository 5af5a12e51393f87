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

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the booking behind a lock on the venue row, re-checking for
// overlaps inside the transaction. Storage stays authoritative on conflicts
// even if the in-memory index was rebuilt cold.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Serializes concurrent inserts for the same venue.
	var venueID string
	lockQuery := `SELECT id FROM venues WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.VenueID).Scan(&venueID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrVenueNotFound
		}
		return fmt.Errorf("lock venue: %w", err)
	}

	overlapQuery := `SELECT id FROM bookings
					 WHERE venue_id = $1
					   AND status = ANY($2)
					   AND start_time < $3
					   AND end_time > $4`
	rows, err := tx.QueryContext(
		ctx, overlapQuery, b.VenueID,
		pq.Array(domain.ActiveStatuses), b.Range.End, b.Range.Start,
	)
	if err != nil {
		return fmt.Errorf("check overlaps: %w", err)
	}

	var conflicting []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scan conflict: %w", err)
		}
		conflicting = append(conflicting, id)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return fmt.Errorf("check overlaps: %w", err)
	}
	if len(conflicting) > 0 {
		return &domain.ConflictError{VenueID: b.VenueID, BookingIDs: conflicting}
	}

	query := `INSERT INTO bookings (id, venue_id, requester_id, start_time, end_time,
				attendees, event_name, event_type, remarks, total_amount, status,
				created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.VenueID, b.RequesterID, b.Range.Start, b.Range.End,
		b.Attendees, b.EventName, b.EventType, b.Remarks, b.TotalAmount,
		b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := selectBookings + ` WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// UpdateStatus applies the transition only if the booking is still in the
// from status. A missed conditional update is diagnosed as either a missing
// booking or a concurrent transition.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error {
	query := `UPDATE bookings
			  SET status = $3, updated_at = now()
			  WHERE id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		var current string
		checkQuery := `SELECT status FROM bookings WHERE id = $1`
		row, qerr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if qerr != nil {
			return fmt.Errorf("check booking status: %w", qerr)
		}
		if scanErr := row.Scan(&current); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return domain.ErrBookingNotFound
			}
			return fmt.Errorf("scan booking status: %w", scanErr)
		}
		return domain.ErrStaleStatus
	}

	return nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := selectBookings + ` WHERE requester_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByVenue(ctx context.Context, venueID string) ([]*domain.Booking, error) {
	query := selectBookings + ` WHERE venue_id = $1 ORDER BY start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, venueID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by venue: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// CompleteElapsed moves APPROVED bookings whose end instant has passed to
// COMPLETED and returns them.
func (r *BookingRepository) CompleteElapsed(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND end_time < $3
			  RETURNING id, venue_id, requester_id, start_time, end_time,
						attendees, event_name, event_type, remarks, total_amount,
						status, created_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusApproved, domain.BookingStatusCompleted, now,
	)
	if err != nil {
		return nil, fmt.Errorf("complete elapsed: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// CancelActiveByVenue cancels every PENDING or APPROVED booking of the venue,
// including ones already in progress; used when a venue is deleted.
func (r *BookingRepository) CancelActiveByVenue(ctx context.Context, venueID string) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $3, updated_at = now()
			  WHERE venue_id = $1
				AND status = ANY($2)
			  RETURNING id, venue_id, requester_id, start_time, end_time,
						attendees, event_name, event_type, remarks, total_amount,
						status, created_at, updated_at`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		venueID, pq.Array(domain.ActiveStatuses), domain.BookingStatusCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel venue bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

// ListActiveHolds returns the index entries for every PENDING or APPROVED
// booking; used to warm the availability index at startup.
func (r *BookingRepository) ListActiveHolds(ctx context.Context) ([]domain.Hold, error) {
	query := `SELECT id, venue_id, start_time, end_time, status
			  FROM bookings
			  WHERE status = ANY($1)
			  ORDER BY venue_id, start_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("list active holds: %w", err)
	}
	defer rows.Close()

	var holds []domain.Hold
	for rows.Next() {
		var h domain.Hold
		var status domain.BookingStatus
		if err = rows.Scan(&h.BookingID, &h.VenueID, &h.Range.Start, &h.Range.End, &status); err != nil {
			return nil, fmt.Errorf("scan hold: %w", err)
		}
		h.Confirmed = status == domain.BookingStatusApproved
		holds = append(holds, h)
	}

	return holds, rows.Err()
}

const selectBookings = `SELECT id, venue_id, requester_id, start_time, end_time,
							   attendees, event_name, event_type, remarks, total_amount,
							   status, created_at, updated_at
						FROM bookings`

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var b domain.Booking
	if err := scan(
		&b.ID, &b.VenueID, &b.RequesterID, &b.Range.Start, &b.Range.End,
		&b.Attendees, &b.EventName, &b.EventType, &b.Remarks, &b.TotalAmount,
		&b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}
	return res, rows.Err()
}
