package pgsql

import (
	"context"

	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	*PgxRecordRepository[domain.Expense]
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		PgxRecordRepository: newPgxRecordRepository[domain.Expense](pool, kindExpense),
	}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) FindRecurring(ctx context.Context) ([]domain.Expense, error) {
	query := `
		WHERE r.kind = $1 AND r.is_active
			AND r.body->'recurring'->>'nextDueDate' IS NOT NULL
		ORDER BY r.body->'recurring'->>'nextDueDate', r.record_id
	`
	return r.getRecords(ctx, query, r.kind)
}

func (r *PgxExpenseRepository) SaveOccurrence(ctx context.Context, template domain.Expense, occurrence domain.Expense) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	if err = r.update(ctx, tx, template); err != nil {
		return err
	}
	if err = r.insert(ctx, tx, occurrence); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
