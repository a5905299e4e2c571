package manager

import "context"

// Hooks receives the outcome of every lifecycle operation. Error hooks carry
// the persistence failure's message; the manager itself does nothing else
// with a failure, so notifications, logging and event dispatch all live in
// hook implementations.
type Hooks[T any] interface {
	OnCreateSuccess(ctx context.Context, obj T, opts Options)
	OnCreateError(ctx context.Context, obj T, message string, opts Options)

	OnUpdateSuccess(ctx context.Context, obj T, opts Options)
	OnUpdateError(ctx context.Context, obj T, message string, opts Options)

	OnDeleteSuccess(ctx context.Context, obj T, opts Options)
	OnDeleteError(ctx context.Context, obj T, message string, opts Options)

	OnActivateSuccess(ctx context.Context, obj T, opts Options)
	OnActivateError(ctx context.Context, obj T, message string, opts Options)

	OnDeactivateSuccess(ctx context.Context, obj T, opts Options)
	OnDeactivateError(ctx context.Context, obj T, message string, opts Options)

	OnDuplicateSuccess(ctx context.Context, original T, clone T, opts Options)
	OnDuplicateError(ctx context.Context, obj T, message string, opts Options)
}

// NoopHooks implements Hooks with empty methods. Embed it and override only
// the callbacks you care about.
type NoopHooks[T any] struct{}

func (NoopHooks[T]) OnCreateSuccess(context.Context, T, Options)           {}
func (NoopHooks[T]) OnCreateError(context.Context, T, string, Options)     {}
func (NoopHooks[T]) OnUpdateSuccess(context.Context, T, Options)           {}
func (NoopHooks[T]) OnUpdateError(context.Context, T, string, Options)     {}
func (NoopHooks[T]) OnDeleteSuccess(context.Context, T, Options)           {}
func (NoopHooks[T]) OnDeleteError(context.Context, T, string, Options)     {}
func (NoopHooks[T]) OnActivateSuccess(context.Context, T, Options)         {}
func (NoopHooks[T]) OnActivateError(context.Context, T, string, Options)   {}
func (NoopHooks[T]) OnDeactivateSuccess(context.Context, T, Options)       {}
func (NoopHooks[T]) OnDeactivateError(context.Context, T, string, Options) {}
func (NoopHooks[T]) OnDuplicateSuccess(context.Context, T, T, Options)     {}
func (NoopHooks[T]) OnDuplicateError(context.Context, T, string, Options)  {}
