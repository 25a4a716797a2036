package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"billing_core/internal/domain/entities"
	mock_interfaces "billing_core/internal/usecase/interfaces/mocks"
	"billing_core/internal/usecase/paging"
	"billing_core/internal/usecase/reconcile"

	"go.uber.org/mock/gomock"
)

// statementsWith serves one bare statement row per known id.
func statementsWith(ctrl *gomock.Controller, known ...string) IBillingStatementUseCase {
	repo := mock_interfaces.NewMockIBillingStatementRepository(ctrl)
	repo.EXPECT().StatementRowsByIDs(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ids []string, _ paging.Request) (paging.Page[reconcile.Row], error) {
			var rows []reconcile.Row
			for _, id := range ids {
				for _, k := range known {
					if id == k {
						rows = append(rows, reconcile.Row{reconcile.ColStatementID: id})
					}
				}
			}
			return paging.Page[reconcile.Row]{Items: rows}, nil
		},
	).AnyTimes()
	return NewBillingStatementUseCase(repo, nil)
}

func TestEmailTaskUseCase_AddTask(t *testing.T) {
	t.Run("invalid statement id", func(t *testing.T) {
		uc := NewEmailTaskUseCase(nil, nil, nil, nil)
		_, err := uc.AddTask(context.Background(), " ", "")
		if !errors.Is(err, ErrInvalidStatementID) {
			t.Fatalf("expected ErrInvalidStatementID, got %v", err)
		}
	})

	t.Run("unknown statement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lock := &stubLock{}
		uc := NewEmailTaskUseCase(nil, statementsWith(ctrl), lock, nil)

		_, err := uc.AddTask(context.Background(), "st-1", "")
		if !errors.Is(err, ErrStatementNotFound) {
			t.Fatalf("expected ErrStatementNotFound, got %v", err)
		}
		if len(lock.resources) != 0 {
			t.Fatalf("lock must not be taken for an unknown statement")
		}
	})

	t.Run("open task rejects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tasks := mock_interfaces.NewMockIEmailTaskRepository(ctrl)
		uc := NewEmailTaskUseCase(tasks, statementsWith(ctrl, "st-1"), &stubLock{}, nil)

		tasks.EXPECT().ListOpenByStatement(gomock.Any(), "st-1").Return([]entities.EmailTask{{ID: "e0", BillingStatementID: "st-1", Status: entities.EmailTaskStatusInProgress}}, nil)

		_, err := uc.AddTask(context.Background(), "st-1", "")
		if !errors.Is(err, ErrEmailTaskAlreadyPending) {
			t.Fatalf("expected ErrEmailTaskAlreadyPending, got %v", err)
		}
	})

	t.Run("queues pending task under the email lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tasks := mock_interfaces.NewMockIEmailTaskRepository(ctrl)
		lock := &stubLock{}
		uc := NewEmailTaskUseCase(tasks, statementsWith(ctrl, "st-1"), lock, nil)

		tasks.EXPECT().ListOpenByStatement(gomock.Any(), "st-1").Return(nil, nil)
		tasks.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.EmailTask{})).DoAndReturn(
			func(_ context.Context, task entities.EmailTask) (entities.EmailTask, error) {
				if task.ID == "" || task.BillingStatementID != "st-1" {
					t.Fatalf("unexpected task: %+v", task)
				}
				if task.Status != entities.EmailTaskStatusPending || task.SendAction != "SendToCustomer" {
					t.Fatalf("unexpected task state: %+v", task)
				}
				return task, nil
			},
		)

		id, err := uc.AddTask(context.Background(), " st-1 ", " SendToCustomer ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if id == "" {
			t.Fatalf("expected task id")
		}
		if len(lock.resources) != 1 || lock.resources[0] != EmailGenerationLockID {
			t.Fatalf("expected email lock, got %v", lock.resources)
		}
	})

	t.Run("lock unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewEmailTaskUseCase(nil, statementsWith(ctrl, "st-1"), &stubLock{err: ErrLockUnavailable}, nil)

		_, err := uc.AddTask(context.Background(), "st-1", "")
		if !errors.Is(err, ErrLockUnavailable) {
			t.Fatalf("expected ErrLockUnavailable, got %v", err)
		}
	})
}

func TestEmailTaskUseCase_AddTasks(t *testing.T) {
	t.Run("no statements", func(t *testing.T) {
		uc := NewEmailTaskUseCase(nil, nil, nil, nil)
		_, err := uc.AddTasks(context.Background(), []string{"", " "})
		if !errors.Is(err, ErrInvalidStatementID) {
			t.Fatalf("expected ErrInvalidStatementID, got %v", err)
		}
	})

	t.Run("unknown statements are named", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewEmailTaskUseCase(nil, statementsWith(ctrl, "st-1"), &stubLock{}, nil)

		_, err := uc.AddTasks(context.Background(), []string{"st-1", "st-2", "st-3"})
		if !errors.Is(err, ErrStatementNotFound) {
			t.Fatalf("expected ErrStatementNotFound, got %v", err)
		}
		if !strings.Contains(err.Error(), "st-2, st-3") {
			t.Fatalf("expected missing ids in error, got %v", err)
		}
	})

	t.Run("any open task rejects the whole batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tasks := mock_interfaces.NewMockIEmailTaskRepository(ctrl)
		uc := NewEmailTaskUseCase(tasks, statementsWith(ctrl, "st-1", "st-2"), &stubLock{}, nil)

		tasks.EXPECT().ListOpen(gomock.Any()).Return([]entities.EmailTask{
			{ID: "e0", BillingStatementID: "other", Status: entities.EmailTaskStatusPending},
			{ID: "e1", BillingStatementID: "st-2", Status: entities.EmailTaskStatusPending},
		}, nil)

		_, err := uc.AddTasks(context.Background(), []string{"st-1", "st-2"})
		if !errors.Is(err, ErrEmailTaskAlreadyPending) {
			t.Fatalf("expected ErrEmailTaskAlreadyPending, got %v", err)
		}
		if !strings.Contains(err.Error(), "st-2") || strings.Contains(err.Error(), "other") {
			t.Fatalf("expected only the busy statement in error, got %v", err)
		}
	})

	t.Run("queues SendAll tasks for deduplicated ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tasks := mock_interfaces.NewMockIEmailTaskRepository(ctrl)
		lock := &stubLock{}
		uc := NewEmailTaskUseCase(tasks, statementsWith(ctrl, "st-1", "st-2"), lock, nil)

		tasks.EXPECT().ListOpen(gomock.Any()).Return(nil, nil)
		tasks.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, batch []entities.EmailTask) ([]string, error) {
				if len(batch) != 2 || batch[0].BillingStatementID != "st-1" || batch[1].BillingStatementID != "st-2" {
					t.Fatalf("unexpected batch: %+v", batch)
				}
				ids := make([]string, 0, len(batch))
				for _, task := range batch {
					if task.SendAction != entities.EmailSendActionAll || task.Status != entities.EmailTaskStatusPending {
						t.Fatalf("unexpected task state: %+v", task)
					}
					ids = append(ids, task.ID)
				}
				return ids, nil
			},
		)

		ids, err := uc.AddTasks(context.Background(), []string{"st-1", "st-2", "st-1"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(ids) != 2 {
			t.Fatalf("expected 2 task ids, got %v", ids)
		}
		if len(lock.resources) != 1 || lock.resources[0] != EmailGenerationLockID {
			t.Fatalf("expected email lock, got %v", lock.resources)
		}
	})
}
