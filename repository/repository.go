// Package repository is the read side of the facade: thin, generic query
// delegation to gorm. It performs no result transformation and no error
// translation; a missing row is reported as a nil object, not an error.
package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/A2Zi/ByscriptsObjectManagerBundle/logger"
	"github.com/A2Zi/ByscriptsObjectManagerBundle/object"
	omerrors "github.com/A2Zi/ByscriptsObjectManagerBundle/pkg/errors"
)

// Criteria maps column names to required values; entries are ANDed together.
type Criteria map[string]any

// Order is a single ORDER BY term.
type Order struct {
	Field string
	Desc  bool
}

// LockMode selects the row locking behavior of Find.
type LockMode int

const (
	LockNone LockMode = iota
	// LockPessimisticRead acquires a shared row lock (FOR SHARE).
	LockPessimisticRead
	// LockPessimisticWrite acquires an exclusive row lock (FOR UPDATE).
	LockPessimisticWrite
	// LockOptimistic compares the loaded object's version against the
	// expected one after the read; a mismatch is a persistence failure.
	LockOptimistic
)

type Repository[T object.Object] struct {
	db  *gorm.DB
	log *logger.Logger
}

func New[T object.Object](db *gorm.DB, baseLog *logger.Logger) *Repository[T] {
	var zero T
	repoLog := baseLog.With("repo", fmt.Sprintf("Repository[%T]", zero))
	return &Repository[T]{db: db, log: repoLog}
}

// Find loads the object with the given identifier, or nil if no row matches.
// lockVersion is only consulted under LockOptimistic and may be nil.
func (r *Repository[T]) Find(ctx context.Context, id uuid.UUID, lock LockMode, lockVersion *int) (T, error) {
	var zero T

	q := r.db.WithContext(ctx)
	switch lock {
	case LockPessimisticRead:
		q = q.Clauses(clause.Locking{Strength: "SHARE"})
	case LockPessimisticWrite:
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	out := newObject[T]()
	if err := q.First(out, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, nil
		}
		return zero, err
	}

	if lock == LockOptimistic && lockVersion != nil {
		versioned, ok := any(out).(object.Versioned)
		if !ok {
			return zero, fmt.Errorf("%T has no version field: %w", out, omerrors.ErrInvalidArgument)
		}
		if versioned.ObjectVersion() != *lockVersion {
			msg := fmt.Sprintf("version mismatch for %s: have %d, expected %d", id, versioned.ObjectVersion(), *lockVersion)
			return zero, omerrors.NewPersistence("find", msg, nil)
		}
	}

	return out, nil
}

func (r *Repository[T]) FindAll(ctx context.Context) ([]T, error) {
	return r.FindBy(ctx, nil, nil, 0, 0)
}

// FindBy returns every object matching criteria, honoring orderBy, limit and
// offset. A non-positive limit or offset is ignored.
func (r *Repository[T]) FindBy(ctx context.Context, criteria Criteria, orderBy []Order, limit, offset int) ([]T, error) {
	q := r.db.WithContext(ctx)
	if len(criteria) > 0 {
		q = q.Where(map[string]any(criteria))
	}
	for _, o := range orderBy {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Field}, Desc: o.Desc})
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var results []T
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// FindOneBy returns the first object matching criteria under orderBy, or nil
// if none matches.
func (r *Repository[T]) FindOneBy(ctx context.Context, criteria Criteria, orderBy []Order) (T, error) {
	var zero T

	q := r.db.WithContext(ctx)
	if len(criteria) > 0 {
		q = q.Where(map[string]any(criteria))
	}
	for _, o := range orderBy {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Field}, Desc: o.Desc})
	}

	out := newObject[T]()
	if err := q.First(out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, nil
		}
		return zero, err
	}
	return out, nil
}

// newObject allocates the struct T points at. gorm needs an addressable
// destination, and a type parameter alone cannot provide one.
func newObject[T object.Object]() T {
	var zero T
	return reflect.New(reflect.TypeOf(zero).Elem()).Interface().(T)
}
