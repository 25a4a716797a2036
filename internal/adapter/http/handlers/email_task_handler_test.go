package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"billing_core/internal/adapter/http/handlers/mocks"
	"billing_core/internal/usecase"
	"billing_core/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newEmailTaskRouter(t *testing.T) (*gin.Engine, *mocks.MockIEmailTaskUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEmailTaskUseCase(ctrl)
	h := NewEmailTaskHandler(uc, nil)

	r := gin.New()
	r.POST("/v1/email-tasks", h.CreateTasks)
	return r, uc
}

func TestEmailTaskHandler_CreateTasks(t *testing.T) {
	t.Run("no statement", func(t *testing.T) {
		r, _ := newEmailTaskRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/email-tasks", `{"sendAction":"SendAll"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("single statement with send action", func(t *testing.T) {
		r, uc := newEmailTaskRouter(t)
		uc.EXPECT().AddTask(gomock.Any(), "st-1", "SendToCustomer").Return("task-1", nil)

		w := doJSON(r, http.MethodPost, "/v1/email-tasks", `{"billingStatementId":"st-1","sendAction":"SendToCustomer"}`)
		if w.Code != http.StatusCreated || w.Body.String() != `{"taskIds":["task-1"]}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("batch", func(t *testing.T) {
		r, uc := newEmailTaskRouter(t)
		uc.EXPECT().AddTasks(gomock.Any(), []string{"st-1", "st-2"}).Return([]string{"t1", "t2"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/email-tasks", `{"billingStatementIds":["st-1","st-2"]}`)
		if w.Code != http.StatusCreated || w.Body.String() != `{"taskIds":["t1","t2"]}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("already pending", func(t *testing.T) {
		r, uc := newEmailTaskRouter(t)
		uc.EXPECT().AddTasks(gomock.Any(), []string{"st-1"}).Return(nil, fmt.Errorf("%w: statements st-1", usecase.ErrEmailTaskAlreadyPending))

		w := doJSON(r, http.MethodPost, "/v1/email-tasks", `{"billingStatementIds":["st-1"]}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown statement", func(t *testing.T) {
		r, uc := newEmailTaskRouter(t)
		uc.EXPECT().AddTask(gomock.Any(), "st-9", "").Return("", usecase.ErrStatementNotFound)

		w := doJSON(r, http.MethodPost, "/v1/email-tasks", `{"billingStatementId":"st-9"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("lost lock create race", func(t *testing.T) {
		r, uc := newEmailTaskRouter(t)
		uc.EXPECT().AddTask(gomock.Any(), "st-1", "").Return("", fmt.Errorf("%w: %w", usecase.ErrLockUnavailable, interfaces.ErrLockAlreadyExists))

		w := doJSON(r, http.MethodPost, "/v1/email-tasks", `{"billingStatementId":"st-1"}`)
		if w.Code != http.StatusLocked {
			t.Fatalf("expected 423, got %d", w.Code)
		}
	})
}
