package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/domain"
	"github.com/supabond/6701-Project06-CoWorkingSpace-Backend/internal/query"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const spaceTable = "coworkingspaces"

// SpaceFields is the list-endpoint allow-list: request field names mapped
// onto coworkingspaces columns.
var SpaceFields = query.Fields{
	"id":             "id",
	"name":           "name",
	"operatingHours": "operating_hours",
	"address":        "address",
	"province":       "province",
	"postalcode":     "postalcode",
	"tel":            "tel",
	"picture":        "picture",
	"createdAt":      "created_at",
}

var spaceColumns = []string{
	"id", "name", "operating_hours", "address", "province",
	"postalcode", "tel", "picture", "created_at", "updated_at",
}

type SpaceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSpaceRepo(db *dbpg.DB) *SpaceRepository {
	return &SpaceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SpaceRepository) Create(ctx context.Context, s *domain.Coworkingspace) error {
	q := `INSERT INTO coworkingspaces (id, name, operating_hours, address, province, postalcode, tel, picture, created_at, updated_at)
		  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, q,
		s.ID, s.Name, s.OperatingHours, s.Address, s.Province,
		s.Postalcode, s.Tel, s.Picture, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("insert coworkingspace: %w", err)
	}

	return nil
}

func (r *SpaceRepository) GetByID(ctx context.Context, id string) (*domain.Coworkingspace, error) {
	q := `SELECT id, name, operating_hours, address, province, postalcode, tel, picture, created_at, updated_at
		  FROM coworkingspaces
		  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, q, id)
	if err != nil {
		return nil, fmt.Errorf("get coworkingspace: %w", err)
	}

	var s domain.Coworkingspace
	if err = row.Scan(
		&s.ID, &s.Name, &s.OperatingHours, &s.Address, &s.Province,
		&s.Postalcode, &s.Tel, &s.Picture, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSpaceNotFound
		}
		return nil, fmt.Errorf("scan coworkingspace: %w", err)
	}

	return &s, nil
}

// List executes a bounded list query and reports the full collection size
// alongside the page of results.
func (r *SpaceRepository) List(ctx context.Context, lq query.ListQuery) ([]*domain.Coworkingspace, int, error) {
	selectSQL, err := lq.BuildSelect(spaceTable, spaceColumns)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, selectSQL)
	if err != nil {
		return nil, 0, fmt.Errorf("list coworkingspaces: %w", err)
	}
	defer rows.Close()

	var res []*domain.Coworkingspace
	for rows.Next() {
		var s domain.Coworkingspace
		if err = rows.Scan(
			&s.ID, &s.Name, &s.OperatingHours, &s.Address, &s.Province,
			&s.Postalcode, &s.Tel, &s.Picture, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan coworkingspace: %w", err)
		}
		res = append(res, &s)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	countSQL, err := query.BuildCount(spaceTable)
	if err != nil {
		return nil, 0, err
	}
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, countSQL)
	if err != nil {
		return nil, 0, fmt.Errorf("count coworkingspaces: %w", err)
	}
	var total int
	if err = row.Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("scan count: %w", err)
	}

	return res, total, nil
}

func (r *SpaceRepository) Update(ctx context.Context, s *domain.Coworkingspace) error {
	q := `UPDATE coworkingspaces
		  SET name=$2, operating_hours=$3, address=$4, province=$5, postalcode=$6, tel=$7, picture=$8, updated_at=now()
		  WHERE id=$1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, q,
		s.ID, s.Name, s.OperatingHours, s.Address, s.Province,
		s.Postalcode, s.Tel, s.Picture,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update coworkingspace: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("coworkingspace rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSpaceNotFound
	}

	return nil
}

// DeleteCascade removes every booking referencing the space and then the
// space itself, as one transaction. Returns how many bookings went with it.
func (r *SpaceRepository) DeleteCascade(ctx context.Context, id string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Bookings must go first: a space row without the cascade would leave
	// orphans behind.
	bres, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE coworkingspace_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("cascade bookings: %w", err)
	}
	removed, err := bres.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cascade rows affected: %w", err)
	}

	sres, err := tx.ExecContext(ctx, `DELETE FROM coworkingspaces WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete coworkingspace: %w", err)
	}
	rows, err := sres.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("coworkingspace rows affected: %w", err)
	}
	if rows == 0 {
		return 0, domain.ErrSpaceNotFound
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit cascade: %w", err)
	}

	return removed, nil
}
