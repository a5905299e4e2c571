// Package manager exposes the object lifecycle facade: reads delegate to a
// repository, writes and lifecycle operations go through a persistence
// session, and every lifecycle operation reports its outcome through a
// success/error hook pair.
package manager

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/A2Zi/ByscriptsObjectManagerBundle/logger"
	"github.com/A2Zi/ByscriptsObjectManagerBundle/object"
	omerrors "github.com/A2Zi/ByscriptsObjectManagerBundle/pkg/errors"
	"github.com/A2Zi/ByscriptsObjectManagerBundle/repository"
	"github.com/A2Zi/ByscriptsObjectManagerBundle/session"
)

// Options is an open configuration mapping handed through untouched to
// process steps and hooks. The manager attaches no meaning to it.
type Options map[string]any

// Manager drives the lifecycle of one entity type. It holds no state of its
// own beyond its collaborators and is not safe for concurrent use, matching
// the session it wraps.
type Manager[T object.Object] struct {
	repo    *repository.Repository[T]
	session *session.Session
	proc    Processor[T]
	hooks   Hooks[T]
	log     *logger.Logger
}

type Option[T object.Object] func(*Manager[T])

func WithHooks[T object.Object](h Hooks[T]) Option[T] {
	return func(m *Manager[T]) { m.hooks = h }
}

func WithProcessor[T object.Object](p Processor[T]) Option[T] {
	return func(m *Manager[T]) { m.proc = p }
}

func WithSession[T object.Object](s *session.Session) Option[T] {
	return func(m *Manager[T]) { m.session = s }
}

func WithRepository[T object.Object](r *repository.Repository[T]) Option[T] {
	return func(m *Manager[T]) { m.repo = r }
}

func New[T object.Object](db *gorm.DB, baseLog *logger.Logger, opts ...Option[T]) *Manager[T] {
	var zero T
	m := &Manager[T]{
		repo:    repository.New[T](db, baseLog),
		session: session.New(db, baseLog),
		proc:    DefaultProcessor[T]{},
		hooks:   NoopHooks[T]{},
		log:     baseLog.With("manager", fmt.Sprintf("Manager[%T]", zero)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager[T]) Repository() *repository.Repository[T] { return m.repo }

func (m *Manager[T]) Session() *session.Session { return m.session }

// Find delegates to the repository. A missing row yields a nil object and a
// nil error.
func (m *Manager[T]) Find(ctx context.Context, id uuid.UUID, lock repository.LockMode, lockVersion *int) (T, error) {
	return m.repo.Find(ctx, id, lock, lockVersion)
}

func (m *Manager[T]) FindAll(ctx context.Context) ([]T, error) {
	return m.repo.FindAll(ctx)
}

func (m *Manager[T]) FindBy(ctx context.Context, criteria repository.Criteria, orderBy []repository.Order, limit, offset int) ([]T, error) {
	return m.repo.FindBy(ctx, criteria, orderBy, limit, offset)
}

func (m *Manager[T]) FindOneBy(ctx context.Context, criteria repository.Criteria, orderBy []repository.Order) (T, error) {
	return m.repo.FindOneBy(ctx, criteria, orderBy)
}

// Persist queues obj on the session and returns the manager for chaining.
func (m *Manager[T]) Persist(obj T) *Manager[T] {
	m.session.Persist(obj)
	return m
}

// Remove queues obj for deletion and returns the manager for chaining.
func (m *Manager[T]) Remove(obj T) *Manager[T] {
	m.session.Remove(obj)
	return m
}

// Flush commits all queued session operations.
func (m *Manager[T]) Flush(ctx context.Context) error {
	return m.session.Flush(ctx)
}

// Save runs the save process step and fires the create or update hook pair,
// chosen by whether obj had an identifier when Save was entered. The check
// happens before the process step runs, since flushing assigns identifiers
// to new objects. A recognized persistence failure yields (false, nil) after
// exactly one error-hook invocation; any other error propagates with no hook
// fired.
func (m *Manager[T]) Save(ctx context.Context, obj T, opts Options) (bool, error) {
	isNew := obj.GetID() == uuid.Nil

	if err := m.proc.ProcessSave(ctx, m, obj, opts); err != nil {
		pe, recognized := omerrors.AsPersistence(err)
		if !recognized {
			return false, err
		}
		if isNew {
			m.hooks.OnCreateError(ctx, obj, pe.Message, opts)
		} else {
			m.hooks.OnUpdateError(ctx, obj, pe.Message, opts)
		}
		return false, nil
	}

	if isNew {
		m.hooks.OnCreateSuccess(ctx, obj, opts)
	} else {
		m.hooks.OnUpdateSuccess(ctx, obj, opts)
	}
	return true, nil
}

// Delete runs the delete process step and fires the delete hook pair under
// the same outcome protocol as Save.
func (m *Manager[T]) Delete(ctx context.Context, obj T, opts Options) (bool, error) {
	if err := m.proc.ProcessDelete(ctx, m, obj, opts); err != nil {
		pe, recognized := omerrors.AsPersistence(err)
		if !recognized {
			return false, err
		}
		m.hooks.OnDeleteError(ctx, obj, pe.Message, opts)
		return false, nil
	}
	m.hooks.OnDeleteSuccess(ctx, obj, opts)
	return true, nil
}

// Duplicate runs the duplicate process step, by default a shallow copy of
// obj persisted as a new object. On success it returns the clone and true;
// a recognized persistence failure yields a zero clone and false after the
// error hook fires.
func (m *Manager[T]) Duplicate(ctx context.Context, obj T, opts Options) (T, bool, error) {
	clone, err := m.proc.ProcessDuplicate(ctx, m, obj, opts)
	if err != nil {
		var zero T
		pe, recognized := omerrors.AsPersistence(err)
		if !recognized {
			return zero, false, err
		}
		m.hooks.OnDuplicateError(ctx, obj, pe.Message, opts)
		return zero, false, nil
	}
	m.hooks.OnDuplicateSuccess(ctx, obj, clone, opts)
	return clone, true, nil
}

// Activate runs the activate process step, by default setting the object's
// active flag and flushing.
func (m *Manager[T]) Activate(ctx context.Context, obj T, opts Options) (bool, error) {
	if err := m.proc.ProcessActivate(ctx, m, obj, opts); err != nil {
		pe, recognized := omerrors.AsPersistence(err)
		if !recognized {
			return false, err
		}
		m.hooks.OnActivateError(ctx, obj, pe.Message, opts)
		return false, nil
	}
	m.hooks.OnActivateSuccess(ctx, obj, opts)
	return true, nil
}

// Deactivate mirrors Activate with the flag cleared.
func (m *Manager[T]) Deactivate(ctx context.Context, obj T, opts Options) (bool, error) {
	if err := m.proc.ProcessDeactivate(ctx, m, obj, opts); err != nil {
		pe, recognized := omerrors.AsPersistence(err)
		if !recognized {
			return false, err
		}
		m.hooks.OnDeactivateError(ctx, obj, pe.Message, opts)
		return false, nil
	}
	m.hooks.OnDeactivateSuccess(ctx, obj, opts)
	return true, nil
}
