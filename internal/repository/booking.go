package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/domain"
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

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	q := `INSERT INTO bookings (id, booking_date, num_of_rooms, user_id, coworkingspace_id, created_at, updated_at)
		  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, q,
		b.ID, b.BookingDate, b.NumOfRooms, b.UserID, b.CoworkingspaceID, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

const bookingDetailsSelect = `
	SELECT b.id, b.booking_date, b.num_of_rooms, b.user_id, b.coworkingspace_id,
		   b.created_at, b.updated_at,
		   COALESCE(c.name, ''), COALESCE(c.address, ''), COALESCE(c.tel, '')
	FROM bookings b
	LEFT JOIN coworkingspaces c ON c.id = b.coworkingspace_id`

func (r *BookingRepository) GetDetails(ctx context.Context, id string) (*domain.BookingDetails, error) {
	q := bookingDetailsSelect + ` WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, q, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var d domain.BookingDetails
	if err = row.Scan(
		&d.ID, &d.BookingDate, &d.NumOfRooms, &d.UserID, &d.CoworkingspaceID,
		&d.CreatedAt, &d.UpdatedAt,
		&d.SpaceName, &d.SpaceAddress, &d.SpaceTel,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &d, nil
}

// List returns bookings enriched with the owning space's contact fields.
// Empty userID means no owner scoping (admin view); empty spaceID means all
// spaces.
func (r *BookingRepository) List(ctx context.Context, userID, spaceID string) ([]*domain.BookingDetails, error) {
	q := bookingDetailsSelect
	var (
		args  []any
		where []string
	)
	if userID != "" {
		args = append(args, userID)
		where = append(where, fmt.Sprintf("b.user_id = $%d", len(args)))
	}
	if spaceID != "" {
		args = append(args, spaceID)
		where = append(where, fmt.Sprintf("b.coworkingspace_id = $%d", len(args)))
	}
	for i, w := range where {
		if i == 0 {
			q += " WHERE " + w
		} else {
			q += " AND " + w
		}
	}
	q += " ORDER BY b.created_at DESC"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingDetails
	for rows.Next() {
		var d domain.BookingDetails
		if err = rows.Scan(
			&d.ID, &d.BookingDate, &d.NumOfRooms, &d.UserID, &d.CoworkingspaceID,
			&d.CreatedAt, &d.UpdatedAt,
			&d.SpaceName, &d.SpaceAddress, &d.SpaceTel,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	q := `UPDATE bookings
		  SET booking_date=$2, num_of_rooms=$3, updated_at=now()
		  WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, q, b.ID, b.BookingDate, b.NumOfRooms)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

// DeleteOrphans removes bookings whose space no longer exists. Orphans can
// only appear when a cascade delete was interrupted partway.
func (r *BookingRepository) DeleteOrphans(ctx context.Context) ([]*domain.Booking, error) {
	q := `DELETE FROM bookings b
		  WHERE NOT EXISTS (
			SELECT 1 FROM coworkingspaces c WHERE c.id = b.coworkingspace_id
		  )
		  RETURNING b.id, b.booking_date, b.num_of_rooms, b.user_id, b.coworkingspace_id, b.created_at, b.updated_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, q)
	if err != nil {
		return nil, fmt.Errorf("delete orphan bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.BookingDate, &b.NumOfRooms, &b.UserID, &b.CoworkingspaceID,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan orphan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
