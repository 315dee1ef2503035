package fixedhashtable

import (
	"github.com/maxsei/fixedhashtable/hashfunc"
	"github.com/maxsei/fixedhashtable/internal/resource"
)

// ErrMemoryLimitExceeded is the cause of an AllocationError when a table does not fit its MemoryBudget.
var ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded

type options struct {
	hashAlgorithm hashfunc.HashAlgorithm
	logger        *Logger
	budget        *MemoryBudget
}

// Option configures optional collaborators of a Table.
type Option func(*options)

// WithHashAlgorithm configures the hash function that selects home buckets.
//
// If nil is passed, djb2 is used.
func WithHashAlgorithm(h hashfunc.HashAlgorithm) Option {
	return func(o *options) {
		o.hashAlgorithm = h
	}
}

// WithLogger configures the logger for lifecycle events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMemoryBudget makes the table reserve its storage from b before allocating it and hand it
// back on Close. A table whose storage does not fit the budget fails with AllocationError.
func WithMemoryBudget(b *MemoryBudget) Option {
	return func(o *options) {
		o.budget = b
	}
}

func applyOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.hashAlgorithm == nil {
		o.hashAlgorithm = hashfunc.NewDJB2()
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}

	return o
}

// MemoryBudget - Accounts for the storage bytes of any number of tables and optionally caps them.
// It is safe for concurrent use.
type MemoryBudget struct {
	controller *resource.Controller
}

// NewMemoryBudget - Returns a budget limited to limitBytes, 0 means unlimited (tracking only)
func NewMemoryBudget(limitBytes int64) *MemoryBudget {
	return &MemoryBudget{controller: resource.NewController(resource.Config{MemoryLimitBytes: limitBytes})}
}

// Usage - Returns the number of bytes currently reserved by open tables
func (M *MemoryBudget) Usage() int64 {
	return M.controller.MemoryUsage()
}

// Limit - Returns the configured limit in bytes, 0 if unlimited
func (M *MemoryBudget) Limit() int64 {
	return M.controller.MemoryLimit()
}

func (M *MemoryBudget) acquire(bytes int64) error {
	if M == nil {
		return nil
	}
	return M.controller.AcquireMemory(bytes)
}

func (M *MemoryBudget) release(bytes int64) {
	if M == nil {
		return
	}
	M.controller.ReleaseMemory(bytes)
}
