package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"billing_core/internal/domain/entities"
	"billing_core/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidResourceID = errors.New("invalid resource id")
	ErrLockUnavailable   = errors.New("resource is locked by another process")
)

// ILockUseCase runs work while holding a named resource lock.
type ILockUseCase interface {
	ObtainLockAndExecute(ctx context.Context, resourceID string, fn func(ctx context.Context) error) error
}

type LockUseCase struct {
	repo interfaces.IResourceLockRepository
	log  *zap.Logger
}

var _ ILockUseCase = (*LockUseCase)(nil)

func NewLockUseCase(repo interfaces.IResourceLockRepository, log *zap.Logger) *LockUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &LockUseCase{repo: repo, log: log}
}

// ObtainLockAndExecute acquires the lock, runs fn and releases the lock again,
// whether or not fn failed. Acquisition fails with ErrLockUnavailable when the
// resource is held, and with interfaces.ErrLockConflict when another process
// changed the lock between read and write.
func (u *LockUseCase) ObtainLockAndExecute(ctx context.Context, resourceID string, fn func(ctx context.Context) error) (err error) {
	resourceID = strings.TrimSpace(resourceID)
	if resourceID == "" {
		return ErrInvalidResourceID
	}

	lock, err := u.acquire(ctx, resourceID)
	if err != nil {
		return err
	}
	u.log.Debug("[lock][usecase] acquired", zap.String("resource_id", resourceID), zap.Int64("version", lock.Version))

	defer func() {
		if _, relErr := u.repo.Release(context.WithoutCancel(ctx), lock); relErr != nil {
			u.log.Error("[lock][usecase] release failed", zap.String("resource_id", resourceID), zap.Error(relErr))
			if err == nil {
				err = fmt.Errorf("release lock %s: %w", resourceID, relErr)
			}
		}
	}()

	return fn(ctx)
}

func (u *LockUseCase) acquire(ctx context.Context, resourceID string) (lock entities.ResourceLock, err error) {
	lock, err = u.repo.Fetch(ctx, resourceID)
	switch {
	case errors.Is(err, interfaces.ErrLockNotFound):
		lock, err = u.repo.Create(ctx, resourceID, true)
		if errors.Is(err, interfaces.ErrLockAlreadyExists) {
			// another process registered the resource first and holds it
			return lock, fmt.Errorf("%w: %w", ErrLockUnavailable, err)
		}
		return lock, err
	case err != nil:
		return lock, err
	case lock.IsLocked:
		return lock, ErrLockUnavailable
	}

	lock.IsLocked = true
	return u.repo.Update(ctx, lock)
}
