package interfaces

import (
	"context"

	"billing_core/internal/domain/entities"
)

// IResourceLockRepository persists named resource locks with optimistic concurrency.
//
//   - Fetch fails with ErrLockNotFound for unknown resources.
//   - Create registers the resource at version 1 and fails with ErrLockAlreadyExists
//     when it is already registered.
//   - Update and Release are compare-and-swap on lock.Version and fail with
//     ErrLockConflict when the stored version has moved on. Both return the lock
//     with its new version.
type IResourceLockRepository interface {
	Fetch(ctx context.Context, resourceID string) (entities.ResourceLock, error)
	Create(ctx context.Context, resourceID string, locked bool) (entities.ResourceLock, error)
	Update(ctx context.Context, lock entities.ResourceLock) (entities.ResourceLock, error)
	Release(ctx context.Context, lock entities.ResourceLock) (entities.ResourceLock, error)
}
