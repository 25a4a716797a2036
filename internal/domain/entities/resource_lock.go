package entities

// ResourceLock serializes long-running jobs on a named resource.
//
// Version is the optimistic-concurrency token: every successful write advances
// it, and writes carrying an older value are rejected.
type ResourceLock struct {
	ID         string
	ResourceID string
	IsLocked   bool
	Version    int64
}
