package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"billing_core/internal/domain/entities"
	"billing_core/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmailGenerationLockID is the resource lock guarding the email task queue.
const EmailGenerationLockID = "bs_emailgenerationprocesses"

var ErrEmailTaskAlreadyPending = errors.New("an email task is already pending or in progress")

// IEmailTaskUseCase queues billing statement emails.
type IEmailTaskUseCase interface {
	AddTask(ctx context.Context, billingStatementID string, sendAction string) (string, error)
	AddTasks(ctx context.Context, billingStatementIDs []string) ([]string, error)
}

type EmailTaskUseCase struct {
	tasks      interfaces.IEmailTaskRepository
	statements IBillingStatementUseCase
	locks      ILockUseCase
	log        *zap.Logger
	now        func() time.Time
}

var _ IEmailTaskUseCase = (*EmailTaskUseCase)(nil)

func NewEmailTaskUseCase(tasks interfaces.IEmailTaskRepository, statements IBillingStatementUseCase, locks ILockUseCase, log *zap.Logger) *EmailTaskUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &EmailTaskUseCase{tasks: tasks, statements: statements, locks: locks, log: log, now: time.Now}
}

// AddTask queues an email for one statement. An empty sendAction leaves the
// choice to the sender.
func (u *EmailTaskUseCase) AddTask(ctx context.Context, billingStatementID string, sendAction string) (string, error) {
	billingStatementID = strings.TrimSpace(billingStatementID)
	if billingStatementID == "" {
		return "", ErrInvalidStatementID
	}
	if err := u.requireStatements(ctx, []string{billingStatementID}); err != nil {
		return "", err
	}

	var id string
	err := u.locks.ObtainLockAndExecute(ctx, EmailGenerationLockID, func(ctx context.Context) error {
		open, err := u.tasks.ListOpenByStatement(ctx, billingStatementID)
		if err != nil {
			return err
		}
		if len(open) > 0 {
			return fmt.Errorf("%w: statement %s", ErrEmailTaskAlreadyPending, billingStatementID)
		}
		created, err := u.tasks.Create(ctx, u.newTask(billingStatementID, strings.TrimSpace(sendAction)))
		if err != nil {
			return err
		}
		id = created.ID
		return nil
	})
	if err != nil {
		return "", err
	}

	u.log.Info("[email-task][usecase] task queued", zap.String("task_id", id), zap.String("billing_statement_id", billingStatementID))
	return id, nil
}

// AddTasks queues one SendAll email per statement. Nothing is queued when any
// of the statements already has an open task.
func (u *EmailTaskUseCase) AddTasks(ctx context.Context, billingStatementIDs []string) ([]string, error) {
	ids := normalizeIDs(billingStatementIDs)
	if len(ids) == 0 {
		return nil, ErrInvalidStatementID
	}
	if err := u.requireStatements(ctx, ids); err != nil {
		return nil, err
	}

	var created []string
	err := u.locks.ObtainLockAndExecute(ctx, EmailGenerationLockID, func(ctx context.Context) error {
		open, err := u.tasks.ListOpen(ctx)
		if err != nil {
			return err
		}
		targets := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			targets[id] = struct{}{}
		}
		var busy []string
		for _, task := range open {
			if _, ok := targets[task.BillingStatementID]; ok {
				busy = append(busy, task.BillingStatementID)
			}
		}
		if len(busy) > 0 {
			return fmt.Errorf("%w: statements %s", ErrEmailTaskAlreadyPending, strings.Join(busy, ", "))
		}

		tasks := make([]entities.EmailTask, 0, len(ids))
		for _, id := range ids {
			tasks = append(tasks, u.newTask(id, entities.EmailSendActionAll))
		}
		created, err = u.tasks.CreateBatch(ctx, tasks)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("[email-task][usecase] tasks queued", zap.Int("count", len(created)))
	return created, nil
}

// requireStatements fails with ErrStatementNotFound naming every unknown id.
func (u *EmailTaskUseCase) requireStatements(ctx context.Context, ids []string) error {
	statements, err := u.statements.GetBillingStatementsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	found := make(map[string]struct{}, len(statements))
	for _, s := range statements {
		found[s.ID] = struct{}{}
	}
	var missing []string
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrStatementNotFound, strings.Join(missing, ", "))
	}
	return nil
}

func (u *EmailTaskUseCase) newTask(billingStatementID, sendAction string) entities.EmailTask {
	return entities.EmailTask{
		ID:                 uuid.NewString(),
		BillingStatementID: billingStatementID,
		Status:             entities.EmailTaskStatusPending,
		SendAction:         sendAction,
		CreatedAt:          u.now().UTC(),
	}
}
