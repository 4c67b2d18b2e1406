package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	portsrepo "github.com/openhrm/leave_workflow_app/internal/core/ports/repositories"
	"github.com/openhrm/leave_workflow_app/internal/models"
	"github.com/openhrm/leave_workflow_app/internal/utils/mapping"
)

type PgxCalendarRepository struct {
	BaseRepository
}

// newPgxCalendarRepository creates a new repository for calendar blocked periods.
func newPgxCalendarRepository(pool *pgxpool.Pool) portsrepo.CalendarRepositoryFacade {
	return &PgxCalendarRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CalendarRepositoryFacade = (*PgxCalendarRepository)(nil)

// FindBlockedPeriodsByYear retrieves every blocked period of one calendar year.
func (r *PgxCalendarRepository) FindBlockedPeriodsByYear(ctx context.Context, year int) ([]domain.BlockedPeriod, error) {
	query := `
		SELECT period_id, year, name, from_date, to_date, created_at, created_by, last_updated_at, last_updated_by
		FROM blocked_periods
		WHERE year = $1
		ORDER BY from_date;
	`
	rows, err := r.Pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query blocked periods for year %d: %w", year, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.BlockedPeriod, error) {
		var m models.BlockedPeriod
		err := row.Scan(
			&m.PeriodID,
			&m.Year,
			&m.Name,
			&m.FromDate,
			&m.ToDate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan blocked periods: %w", err)
	}
	return mapping.ToDomainBlockedPeriodSlice(ms), nil
}

// SaveBlockedPeriod inserts a blocked period.
func (r *PgxCalendarRepository) SaveBlockedPeriod(ctx context.Context, p domain.BlockedPeriod) error {
	m := mapping.ToModelBlockedPeriod(p)
	query := `
		INSERT INTO blocked_periods (period_id, year, name, from_date, to_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PeriodID,
		m.Year,
		m.Name,
		m.FromDate,
		m.ToDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save blocked period %s: %w", m.PeriodID, err)
	}
	return nil
}
