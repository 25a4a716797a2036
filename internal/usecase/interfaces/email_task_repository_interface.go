package interfaces

import (
	"context"

	"billing_core/internal/domain/entities"
)

// IEmailTaskRepository persists statement email requests.
type IEmailTaskRepository interface {
	ListOpen(ctx context.Context) ([]entities.EmailTask, error)
	ListOpenByStatement(ctx context.Context, billingStatementID string) ([]entities.EmailTask, error)
	Create(ctx context.Context, task entities.EmailTask) (entities.EmailTask, error)
	CreateBatch(ctx context.Context, tasks []entities.EmailTask) ([]string, error)
}
