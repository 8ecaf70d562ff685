package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/stallchain/internal/apperrors"
	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	"github.com/SscSPs/stallchain/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Record kinds stored in the records table.
const (
	kindDeliveryZone     = "delivery_zone"
	kindOrder            = "order"
	kindPayroll          = "payroll"
	kindInvestor         = "investor"
	kindExpense          = "expense"
	kindProfitLoss       = "profit_loss"
	kindInventory        = "inventory"
	kindStallPerformance = "stall_performance"
)

const FULL_RECORD_SELECT_QUERY = `
SELECT
	r.kind, r.record_id, r.stall_id, r.status, r.record_date, r.is_active, r.version, r.body
FROM records r
`

// PgxRecordRepository stores one kind of business document as JSONB. The
// indexed columns are projected from the domain.Record accessors on every write.
type PgxRecordRepository[T domain.Record] struct {
	BaseRepository
	kind string
}

func newPgxRecordRepository[T domain.Record](pool *pgxpool.Pool, kind string) *PgxRecordRepository[T] {
	return &PgxRecordRepository[T]{
		BaseRepository: BaseRepository{Pool: pool},
		kind:           kind,
	}
}

var (
	_ portsrepo.DeliveryZoneRepositoryFacade     = (*PgxRecordRepository[domain.DeliveryZone])(nil)
	_ portsrepo.OrderRepositoryFacade            = (*PgxRecordRepository[domain.Order])(nil)
	_ portsrepo.PayrollRepositoryFacade          = (*PgxRecordRepository[domain.Payroll])(nil)
	_ portsrepo.InvestorRepositoryFacade         = (*PgxRecordRepository[domain.Investor])(nil)
	_ portsrepo.ProfitLossRepositoryFacade       = (*PgxRecordRepository[domain.ProfitLoss])(nil)
	_ portsrepo.StallPerformanceRepositoryFacade = (*PgxRecordRepository[domain.StallPerformance])(nil)
)

func toModelRecord[T domain.Record](kind string, record T) (models.Record, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return models.Record{}, fmt.Errorf("failed to encode %s %s: %w", kind, record.RecordID(), err)
	}
	return models.Record{
		Kind:       kind,
		RecordID:   record.RecordID(),
		StallID:    record.RecordStallID(),
		Status:     record.RecordStatus(),
		RecordDate: record.RecordDate(),
		IsActive:   record.RecordActive(),
		Version:    record.CurrentVersion(),
		Body:       body,
	}, nil
}

func toDomainRecord[T domain.Record](m models.Record) (T, error) {
	var record T
	if err := json.Unmarshal(m.Body, &record); err != nil {
		return record, fmt.Errorf("failed to decode %s %s: %w", m.Kind, m.RecordID, err)
	}
	return record, nil
}

// getRecords runs the shared select with a trailing filter clause. The first
// argument is always the record kind.
func (r *PgxRecordRepository[T]) getRecords(ctx context.Context, filterQuery string, args ...any) ([]T, error) {
	query := FULL_RECORD_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query "+r.kind+" records", err)
	}
	defer rows.Close()
	modelRecords, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Record])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []T{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect "+r.kind+" rows", err)
	}

	records := make([]T, 0, len(modelRecords))
	for _, m := range modelRecords {
		record, err := toDomainRecord[T](m)
		if err != nil {
			return nil, apperrors.NewAppError(500, "corrupt "+r.kind+" record", err)
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *PgxRecordRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	records, err := r.getRecords(ctx, `WHERE r.kind = $1 AND r.record_id = $2`, r.kind, id)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &records[0], nil
}

func (r *PgxRecordRepository[T]) List(ctx context.Context, filter portsrepo.ListFilter) ([]T, error) {
	where, args := buildRecordFilter(r.kind, filter)
	return r.getRecords(ctx, where+pageClause(filter, &args), args...)
}

func (r *PgxRecordRepository[T]) Save(ctx context.Context, record T) error {
	return r.insert(ctx, r.Pool, record)
}

func (r *PgxRecordRepository[T]) Update(ctx context.Context, record T) error {
	return r.update(ctx, r.Pool, record)
}

func (r *PgxRecordRepository[T]) insert(ctx context.Context, q querier, record T) error {
	m, err := toModelRecord(r.kind, record)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save "+r.kind, err)
	}
	query := `
		INSERT INTO records (
			kind, record_id, stall_id, status, record_date, is_active, version, body
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = q.Exec(ctx, query,
		m.Kind,
		m.RecordID,
		m.StallID,
		m.Status,
		m.RecordDate,
		m.IsActive,
		m.Version,
		m.Body,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError(r.kind + " " + m.RecordID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save "+r.kind+" "+m.RecordID, err)
	}
	return nil
}

// update writes the record only if the stored row is exactly one version behind.
func (r *PgxRecordRepository[T]) update(ctx context.Context, q querier, record T) error {
	m, err := toModelRecord(r.kind, record)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update "+r.kind, err)
	}
	query := `
		UPDATE records
		SET stall_id = $3, status = $4, record_date = $5, is_active = $6,
			version = $7, body = $8, updated_at = now()
		WHERE kind = $1 AND record_id = $2 AND version = $7 - 1;
	`
	cmdTag, err := q.Exec(ctx, query,
		m.Kind,
		m.RecordID,
		m.StallID,
		m.Status,
		m.RecordDate,
		m.IsActive,
		m.Version,
		m.Body,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update "+r.kind+" "+m.RecordID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewVersionConflictError(r.kind, m.RecordID)
	}
	return nil
}

// buildRecordFilter turns a ListFilter into a WHERE clause and its arguments.
func buildRecordFilter(kind string, filter portsrepo.ListFilter) (string, []any) {
	conds := []string{"r.kind = $1"}
	args := []any{kind}
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.StallID != "" {
		add("r.stall_id = $%d", filter.StallID)
	}
	if filter.Status != "" {
		add("r.status = $%d", filter.Status)
	}
	if filter.From != nil {
		add("r.record_date >= $%d", *filter.From)
	}
	if filter.To != nil {
		add("r.record_date < $%d", *filter.To)
	}
	if !filter.IncludeInactive {
		conds = append(conds, "r.is_active")
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// pageClause orders newest first and applies limit/offset. A zero limit means
// no limit.
func pageClause(filter portsrepo.ListFilter, args *[]any) string {
	clause := " ORDER BY r.record_date DESC, r.record_id"
	if filter.Limit > 0 {
		*args = append(*args, filter.Limit)
		clause += fmt.Sprintf(" LIMIT $%d", len(*args))
	}
	if filter.Offset > 0 {
		*args = append(*args, filter.Offset)
		clause += fmt.Sprintf(" OFFSET $%d", len(*args))
	}
	return clause
}
