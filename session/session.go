// Package session is the write side of the facade: a small unit of work that
// queues persist and remove operations and commits them on Flush inside a
// single gorm transaction.
package session

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/A2Zi/ByscriptsObjectManagerBundle/logger"
	"github.com/A2Zi/ByscriptsObjectManagerBundle/object"
	omerrors "github.com/A2Zi/ByscriptsObjectManagerBundle/pkg/errors"
)

type opKind int

const (
	opPersist opKind = iota
	opRemove
)

type operation struct {
	kind opKind
	obj  any
}

// Session tracks pending writes for one logical unit of work. It is not safe
// for concurrent use; each caller owns its own instance.
type Session struct {
	db      *gorm.DB
	log     *logger.Logger
	pending []operation
}

func New(db *gorm.DB, baseLog *logger.Logger) *Session {
	return &Session{db: db, log: baseLog.With("session", "Session")}
}

// Persist queues obj for insertion or upsert on the next Flush.
func (s *Session) Persist(obj any) *Session {
	s.pending = append(s.pending, operation{kind: opPersist, obj: obj})
	return s
}

// Remove queues obj for deletion on the next Flush.
func (s *Session) Remove(obj any) *Session {
	s.pending = append(s.pending, operation{kind: opRemove, obj: obj})
	return s
}

// Clear drops all pending operations without executing them.
func (s *Session) Clear() {
	s.pending = nil
}

// Pending reports the number of queued operations.
func (s *Session) Pending() int {
	return len(s.pending)
}

// Flush executes all pending operations in enqueue order inside one
// transaction. Objects persisted with a nil identifier get a fresh UUID just
// before their insert. Any failure rolls the transaction back, keeps the
// queue intact and is reported as a persistence failure.
func (s *Session) Flush(ctx context.Context) error {
	if len(s.pending) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, op := range s.pending {
			switch op.kind {
			case opPersist:
				if managed, ok := op.obj.(object.Object); ok && managed.GetID() == uuid.Nil {
					managed.SetID(uuid.New())
					if err := tx.Create(op.obj).Error; err != nil {
						return err
					}
					continue
				}
				if err := tx.Save(op.obj).Error; err != nil {
					return err
				}
			case opRemove:
				if err := tx.Delete(op.obj).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		s.log.Debug("flush failed", "pending", len(s.pending), "error", err)
		return omerrors.NewPersistence("flush", err.Error(), err)
	}

	s.pending = nil
	return nil
}
