package postgresql

import (
	"context"
	"fmt"

	"github.com/bengkelworks/shop-backend-go/internal/domain/timesheet"
	"github.com/bengkelworks/shop-backend-go/internal/pkg/database"
)

// policyKey is the fixed key of the single current policy snapshot.
const policyKey = "attendance"

type policyRepository struct {
	db *database.DB
}

func NewPolicyRepository(db *database.DB) timesheet.PolicyRepository {
	return &policyRepository{db: db}
}

// Get implements timesheet.PolicyRepository.
func (r *policyRepository) Get(ctx context.Context) (timesheet.Policy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT work_start, grace_minutes, absentee_cutoff, weekend_mode, timezone, updated_by, updated_at
		FROM policies
		WHERE key = $1
	`

	var policy timesheet.Policy
	err := q.QueryRow(ctx, query, policyKey).Scan(
		&policy.WorkStart, &policy.GraceMinutes, &policy.AbsenteeCutoff,
		&policy.WeekendMode, &policy.Timezone, &policy.UpdatedBy, &policy.UpdatedAt,
	)
	if err != nil {
		return timesheet.Policy{}, err
	}

	return policy, nil
}

// Save implements timesheet.PolicyRepository.
func (r *policyRepository) Save(ctx context.Context, policy timesheet.Policy) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO policies (key, work_start, grace_minutes, absentee_cutoff, weekend_mode, timezone, updated_by, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (key) DO UPDATE SET
			work_start = EXCLUDED.work_start,
			grace_minutes = EXCLUDED.grace_minutes,
			absentee_cutoff = EXCLUDED.absentee_cutoff,
			weekend_mode = EXCLUDED.weekend_mode,
			timezone = EXCLUDED.timezone,
			updated_by = EXCLUDED.updated_by,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		policyKey,
		policy.WorkStart,
		policy.GraceMinutes,
		policy.AbsenteeCutoff,
		policy.WeekendMode,
		policy.Timezone,
		policy.UpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save policy: %w", err)
	}

	return nil
}
