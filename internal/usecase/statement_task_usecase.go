package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"billing_core/internal/domain/entities"
	"billing_core/internal/usecase/interfaces"
	"billing_core/internal/usecase/paging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StatementGenerationLockID is the resource lock guarding the statement task queue.
const StatementGenerationLockID = "bs_statementgenerationprocesses"

const statementTaskSourceManual = "Manual"

var (
	ErrInvalidCustomerSiteID = errors.New("invalid customer site id")
	ErrContractNotFound      = errors.New("contract not found for customer site")
	ErrTaskAlreadyPending    = errors.New("a statement task is already pending or in progress")
)

// IStatementTaskUseCase queues billing statement generation.
type IStatementTaskUseCase interface {
	AddTask(ctx context.Context, customerSiteID string, servicePeriodStart *time.Time) (string, error)
	AddTasks(ctx context.Context, customerSiteIDs []string) ([]string, error)
}

type StatementTaskUseCase struct {
	tasks   interfaces.IStatementTaskRepository
	lookups interfaces.IRevenueLookupRepository
	locks   ILockUseCase
	log     *zap.Logger
	now     func() time.Time
}

var _ IStatementTaskUseCase = (*StatementTaskUseCase)(nil)

func NewStatementTaskUseCase(tasks interfaces.IStatementTaskRepository, lookups interfaces.IRevenueLookupRepository, locks ILockUseCase, log *zap.Logger) *StatementTaskUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &StatementTaskUseCase{tasks: tasks, lookups: lookups, locks: locks, log: log, now: time.Now}
}

// AddTask queues a task for the site's contract. servicePeriodStart is optional.
func (u *StatementTaskUseCase) AddTask(ctx context.Context, customerSiteID string, servicePeriodStart *time.Time) (string, error) {
	customerSiteID = strings.TrimSpace(customerSiteID)
	if customerSiteID == "" {
		return "", ErrInvalidCustomerSiteID
	}

	contracts, err := u.lookups.ContractsBySites(ctx, []string{customerSiteID})
	if err != nil {
		return "", err
	}
	if len(contracts) == 0 {
		return "", ErrContractNotFound
	}
	contract := contracts[0]

	var id string
	err = u.locks.ObtainLockAndExecute(ctx, StatementGenerationLockID, func(ctx context.Context) error {
		open, err := u.tasks.ListOpenByContract(ctx, contract.ID)
		if err != nil {
			return err
		}
		if len(open) > 0 {
			return fmt.Errorf("%w: contract %s", ErrTaskAlreadyPending, contract.ID)
		}
		created, err := u.tasks.Create(ctx, u.newTask(contract, servicePeriodStart))
		if err != nil {
			return err
		}
		id = created.ID
		return nil
	})
	if err != nil {
		return "", err
	}

	u.log.Info("[statement-task][usecase] task queued", zap.String("task_id", id), zap.String("contract_id", contract.ID))
	return id, nil
}

// AddTasks queues one task per contract of the given sites. Nothing is queued
// when any of those contracts already has an open task.
func (u *StatementTaskUseCase) AddTasks(ctx context.Context, customerSiteIDs []string) ([]string, error) {
	siteIDs := normalizeIDs(customerSiteIDs)
	if len(siteIDs) == 0 {
		return nil, ErrInvalidCustomerSiteID
	}

	var contracts []entities.Contract
	for _, chunk := range paging.Chunk(siteIDs, paging.MaxBatchSize) {
		found, err := u.lookups.ContractsBySites(ctx, chunk)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, found...)
	}
	if len(contracts) == 0 {
		return []string{}, nil
	}

	var ids []string
	err := u.locks.ObtainLockAndExecute(ctx, StatementGenerationLockID, func(ctx context.Context) error {
		open, err := u.tasks.ListOpen(ctx)
		if err != nil {
			return err
		}
		targets := make(map[string]struct{}, len(contracts))
		for _, c := range contracts {
			targets[c.ID] = struct{}{}
		}
		var busy []string
		for _, task := range open {
			if _, ok := targets[task.ContractID]; ok {
				busy = append(busy, task.ContractID)
			}
		}
		if len(busy) > 0 {
			return fmt.Errorf("%w: contracts %s", ErrTaskAlreadyPending, strings.Join(busy, ", "))
		}

		tasks := make([]entities.StatementTask, 0, len(contracts))
		for _, c := range contracts {
			tasks = append(tasks, u.newTask(c, nil))
		}
		ids, err = u.tasks.CreateBatch(ctx, tasks)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("[statement-task][usecase] tasks queued", zap.Int("count", len(ids)))
	return ids, nil
}

func (u *StatementTaskUseCase) newTask(contract entities.Contract, servicePeriodStart *time.Time) entities.StatementTask {
	return entities.StatementTask{
		ID:                 uuid.NewString(),
		CustomerSiteID:     contract.CustomerSiteID,
		ContractID:         contract.ID,
		Status:             entities.StatementTaskStatusPending,
		Source:             statementTaskSourceManual,
		ServicePeriodStart: servicePeriodStart,
		CreatedAt:          u.now().UTC(),
	}
}

// normalizeIDs trims, drops empty values and removes duplicates, keeping order.
func normalizeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
