package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bengkelworks/shop-backend-go/internal/domain/timesheet"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) timesheet.HolidayRepository {
	return &holidayRepository{db: db}
}

// Create implements timesheet.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, holiday timesheet.Holiday) (timesheet.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (date, name)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, holiday.Date, holiday.Name).Scan(&holiday.ID, &holiday.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return timesheet.Holiday{}, timesheet.ErrHolidayExists
		}
		return timesheet.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return holiday, nil
}

// ListByRange implements timesheet.HolidayRepository.
func (r *holidayRepository) ListByRange(ctx context.Context, from, to time.Time) ([]timesheet.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, created_at
		FROM holidays
		WHERE date >= $1 AND date <= $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []timesheet.Holiday
	for rows.Next() {
		var h timesheet.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// Delete implements timesheet.HolidayRepository.
func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}
