package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInventoryRepository struct {
	*PgxRecordRepository[domain.Inventory]
}

func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{
		PgxRecordRepository: newPgxRecordRepository[domain.Inventory](pool, kindInventory),
	}
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

// ListByStall matches batches whose stallWiseStock array carries the stall.
// The stall column is empty for batches, so filter.StallID is ignored.
func (r *PgxInventoryRepository) ListByStall(ctx context.Context, stallID string, filter portsrepo.ListFilter) ([]domain.Inventory, error) {
	filter.StallID = ""
	where, args := buildRecordFilter(r.kind, filter)
	args = append(args, stallID)
	where += fmt.Sprintf(" AND r.body->'stallWiseStock' @> jsonb_build_array(jsonb_build_object('stallID', $%d::text))", len(args))
	return r.getRecords(ctx, where+pageClause(filter, &args), args...)
}
