// Package object defines the minimal capability contracts a managed entity
// must satisfy to be driven by the lifecycle manager. Entities stay plain
// gorm models; the manager only ever sees these narrow interfaces.
package object

import (
	"reflect"

	"github.com/google/uuid"
)

// Object is the base contract for any managed entity. An object is considered
// new while its identifier is uuid.Nil; the identifier is assigned by the
// persistence session on first flush.
type Object interface {
	GetID() uuid.UUID
	SetID(id uuid.UUID)
}

// Activatable is implemented by entities carrying an active/inactive flag.
// The manager's Activate and Deactivate operations require it.
type Activatable interface {
	SetActive(active bool)
	IsActive() bool
}

// Versioned is implemented by entities that carry an optimistic lock version.
type Versioned interface {
	ObjectVersion() int
}

// Clone returns a shallow copy of obj with its identifier cleared, so the
// copy is treated as a new object on the next flush. obj must be a non-nil
// pointer to a struct.
func Clone[T Object](obj T) T {
	src := reflect.ValueOf(obj).Elem()
	dst := reflect.New(src.Type())
	dst.Elem().Set(src)

	out := dst.Interface().(T)
	out.SetID(uuid.Nil)
	return out
}
