package interfaces

import (
	"context"

	"billing_core/internal/domain/entities"
)

// IStatementTaskRepository persists statement generation requests.
type IStatementTaskRepository interface {
	ListOpen(ctx context.Context) ([]entities.StatementTask, error)
	ListOpenByContract(ctx context.Context, contractID string) ([]entities.StatementTask, error)
	Create(ctx context.Context, task entities.StatementTask) (entities.StatementTask, error)
	CreateBatch(ctx context.Context, tasks []entities.StatementTask) ([]string, error)
}
