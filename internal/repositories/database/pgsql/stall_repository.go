package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	"github.com/SscSPs/stallchain/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStallRepository struct {
	BaseRepository
}

func newPgxStallRepository(pool *pgxpool.Pool) portsrepo.StallRepositoryFacade {
	return &PgxStallRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.StallRepositoryFacade = (*PgxStallRepository)(nil)

const FULL_STALL_SELECT_QUERY = `
SELECT
	s.stall_id, s.name, s.code, s.address, s.city, s.manager_id, s.contact_phone, s.is_active,
	s.version, s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
FROM stalls s
`

func toDomainStall(m models.Stall) domain.Stall {
	return domain.Stall{
		StallID:      m.StallID,
		Name:         m.Name,
		Code:         m.Code,
		Address:      m.Address,
		City:         m.City,
		ManagerID:    m.ManagerID,
		ContactPhone: m.ContactPhone,
		IsActive:     m.IsActive,
		Versioned:    domain.Versioned{Version: m.Version},
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxStallRepository) getStalls(ctx context.Context, filterQuery string, args ...any) ([]domain.Stall, error) {
	rows, err := r.Pool.Query(ctx, FULL_STALL_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query stalls", err)
	}
	defer rows.Close()
	modelStalls, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Stall])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Stall{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect stall rows", err)
	}
	stalls := make([]domain.Stall, len(modelStalls))
	for i, m := range modelStalls {
		stalls[i] = toDomainStall(m)
	}
	return stalls, nil
}

func (r *PgxStallRepository) FindStallByID(ctx context.Context, stallID string) (*domain.Stall, error) {
	stalls, err := r.getStalls(ctx, `WHERE s.stall_id = $1`, stallID)
	if err != nil {
		return nil, err
	}
	if len(stalls) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &stalls[0], nil
}

func (r *PgxStallRepository) ListStalls(ctx context.Context, includeInactive bool, limit, offset int) ([]domain.Stall, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `WHERE ($1 OR s.is_active) ORDER BY s.name, s.stall_id LIMIT $2 OFFSET $3`
	return r.getStalls(ctx, query, includeInactive, limit, offset)
}

func (r *PgxStallRepository) SaveStall(ctx context.Context, stall domain.Stall) error {
	query := `
		INSERT INTO stalls (
			stall_id, name, code, address, city, manager_id, contact_phone, is_active,
			version, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		stall.StallID,
		stall.Name,
		stall.Code,
		stall.Address,
		stall.City,
		stall.ManagerID,
		stall.ContactPhone,
		stall.IsActive,
		stall.Version,
		stall.CreatedAt,
		stall.CreatedBy,
		stall.LastUpdatedAt,
		stall.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("stall code " + stall.Code + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save stall "+stall.StallID, err)
	}
	return nil
}

func (r *PgxStallRepository) UpdateStall(ctx context.Context, stall domain.Stall) error {
	query := `
		UPDATE stalls
		SET name = $2, code = $3, address = $4, city = $5, manager_id = $6,
			contact_phone = $7, is_active = $8, version = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE stall_id = $1 AND version = $9 - 1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		stall.StallID,
		stall.Name,
		stall.Code,
		stall.Address,
		stall.City,
		stall.ManagerID,
		stall.ContactPhone,
		stall.IsActive,
		stall.Version,
		stall.LastUpdatedAt,
		stall.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("stall code " + stall.Code + " already exists")
		}
		return apperrors.NewAppError(500, "failed to update stall "+stall.StallID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewVersionConflictError("stall", stall.StallID)
	}
	return nil
}
