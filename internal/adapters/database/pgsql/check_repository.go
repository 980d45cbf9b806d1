package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/splitit-app/splitit_backend/internal/apperrors"
	"github.com/splitit-app/splitit_backend/internal/core/domain"
	portsrepo "github.com/splitit-app/splitit_backend/internal/core/ports/repositories"
)

// checkRepository persists each check aggregate as one row: scalar columns
// for the fields listings need, jsonb documents for the owned collections.
// The aggregate is always loaded and saved whole.
type checkRepository struct {
	pool *pgxpool.Pool
}

// NewCheckRepository creates a new repository for check aggregates.
func NewCheckRepository(pool *pgxpool.Pool) portsrepo.CheckRepositoryFacade {
	return &checkRepository{pool: pool}
}

var _ portsrepo.CheckRepositoryFacade = (*checkRepository)(nil)

// SaveCheck inserts or fully replaces a check aggregate.
func (r *checkRepository) SaveCheck(ctx context.Context, check domain.Check) error {
	locations, err := json.Marshal(check.Locations)
	if err != nil {
		return fmt.Errorf("failed to marshal locations for check %s: %w", check.CheckID, err)
	}
	lineItems, err := json.Marshal(check.LineItems)
	if err != nil {
		return fmt.Errorf("failed to marshal line items for check %s: %w", check.CheckID, err)
	}

	query := `
		INSERT INTO checks (check_id, check_date, description, create_timestamp, locations, line_items)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (check_id) DO UPDATE SET
			check_date = EXCLUDED.check_date,
			description = EXCLUDED.description,
			locations = EXCLUDED.locations,
			line_items = EXCLUDED.line_items;
	`
	_, err = r.pool.Exec(ctx, query,
		check.CheckID,
		check.Date,
		check.Description,
		check.CreateTimestamp,
		locations,
		lineItems,
	)
	if err != nil {
		return fmt.Errorf("failed to save check %s: %w", check.CheckID, err)
	}
	return nil
}

// FindCheckByID retrieves a fully populated check aggregate.
func (r *checkRepository) FindCheckByID(ctx context.Context, checkID string) (*domain.Check, error) {
	query := `
		SELECT check_id, check_date, description, create_timestamp, locations, line_items
		FROM checks
		WHERE check_id = $1;
	`
	check, err := scanCheck(r.pool.QueryRow(ctx, query, checkID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("check %s: %w", checkID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find check by ID %s: %w", checkID, err)
	}
	return check, nil
}

// ListChecks retrieves every stored check aggregate. Ordering is left to the
// caller; the listing layer sorts by ID itself.
func (r *checkRepository) ListChecks(ctx context.Context) ([]domain.Check, error) {
	query := `
		SELECT check_id, check_date, description, create_timestamp, locations, line_items
		FROM checks;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list checks: %w", err)
	}
	defer rows.Close()

	var checks []domain.Check
	for rows.Next() {
		check, err := scanCheck(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check row: %w", err)
		}
		checks = append(checks, *check)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read check rows: %w", err)
	}
	return checks, nil
}

// DeleteCheck removes a check aggregate.
func (r *checkRepository) DeleteCheck(ctx context.Context, checkID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM checks WHERE check_id = $1;`, checkID)
	if err != nil {
		return fmt.Errorf("failed to delete check %s: %w", checkID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("check %s: %w", checkID, apperrors.ErrNotFound)
	}
	return nil
}

func scanCheck(row pgx.Row) (*domain.Check, error) {
	var check domain.Check
	var locations, lineItems []byte

	err := row.Scan(
		&check.CheckID,
		&check.Date,
		&check.Description,
		&check.CreateTimestamp,
		&locations,
		&lineItems,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(locations, &check.Locations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal locations: %w", err)
	}
	if len(lineItems) > 0 {
		if err := json.Unmarshal(lineItems, &check.LineItems); err != nil {
			return nil, fmt.Errorf("failed to unmarshal line items: %w", err)
		}
	}
	return &check, nil
}
