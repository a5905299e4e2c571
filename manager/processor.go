package manager

import (
	"context"
	"fmt"

	"github.com/A2Zi/ByscriptsObjectManagerBundle/object"
	omerrors "github.com/A2Zi/ByscriptsObjectManagerBundle/pkg/errors"
)

// Processor holds the overridable process steps behind each lifecycle
// operation. Implementations customize flush strategy, validation or
// multi-object coordination; the manager only classifies their errors and
// fires hooks. Embed DefaultProcessor and override selectively.
type Processor[T object.Object] interface {
	ProcessSave(ctx context.Context, m *Manager[T], obj T, opts Options) error
	ProcessDelete(ctx context.Context, m *Manager[T], obj T, opts Options) error
	ProcessDuplicate(ctx context.Context, m *Manager[T], obj T, opts Options) (T, error)
	ProcessActivate(ctx context.Context, m *Manager[T], obj T, opts Options) error
	ProcessDeactivate(ctx context.Context, m *Manager[T], obj T, opts Options) error
}

// DefaultProcessor persists and flushes through the manager's session and
// nothing more.
type DefaultProcessor[T object.Object] struct{}

func (DefaultProcessor[T]) ProcessSave(ctx context.Context, m *Manager[T], obj T, _ Options) error {
	return m.Session().Persist(obj).Flush(ctx)
}

func (DefaultProcessor[T]) ProcessDelete(ctx context.Context, m *Manager[T], obj T, _ Options) error {
	return m.Session().Remove(obj).Flush(ctx)
}

func (DefaultProcessor[T]) ProcessDuplicate(ctx context.Context, m *Manager[T], obj T, _ Options) (T, error) {
	clone := object.Clone(obj)
	if err := m.Session().Persist(clone).Flush(ctx); err != nil {
		var zero T
		return zero, err
	}
	return clone, nil
}

func (DefaultProcessor[T]) ProcessActivate(ctx context.Context, m *Manager[T], obj T, _ Options) error {
	return setActive(ctx, m, obj, true)
}

func (DefaultProcessor[T]) ProcessDeactivate(ctx context.Context, m *Manager[T], obj T, _ Options) error {
	return setActive(ctx, m, obj, false)
}

func setActive[T object.Object](ctx context.Context, m *Manager[T], obj T, active bool) error {
	activatable, ok := any(obj).(object.Activatable)
	if !ok {
		return fmt.Errorf("%T has no active flag: %w", obj, omerrors.ErrInvalidArgument)
	}
	activatable.SetActive(active)
	return m.Session().Persist(obj).Flush(ctx)
}
