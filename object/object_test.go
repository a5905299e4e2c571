package object_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/A2Zi/ByscriptsObjectManagerBundle/internal/testutil"
	"github.com/A2Zi/ByscriptsObjectManagerBundle/object"
)

func TestClone(t *testing.T) {
	original := testutil.NewArticle("Clone me", "clone-me")
	original.SetID(uuid.New())
	original.Active = true
	original.Metadata["lang"] = "en"

	clone := object.Clone(original)

	if clone == original {
		t.Fatalf("Clone: expected a distinct instance")
	}
	if clone.GetID() != uuid.Nil {
		t.Fatalf("Clone: expected cleared identifier, got %s", clone.GetID())
	}
	if clone.Title != original.Title || clone.Slug != original.Slug {
		t.Fatalf("Clone: fields not copied: %+v", clone)
	}
	if !clone.Active {
		t.Fatalf("Clone: active flag not preserved")
	}

	// Shallow copy: the metadata map is shared between both instances.
	clone.Metadata["seen"] = true
	if _, ok := original.Metadata["seen"]; !ok {
		t.Fatalf("Clone: expected shared metadata map")
	}
}

func TestCloneKeepsOriginalID(t *testing.T) {
	original := testutil.NewArticle("Stays", "stays")
	id := uuid.New()
	original.SetID(id)

	_ = object.Clone(original)

	if original.GetID() != id {
		t.Fatalf("Clone: original identifier changed to %s", original.GetID())
	}
}
