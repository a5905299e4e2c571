package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/A2Zi/ByscriptsObjectManagerBundle/internal/testutil"
	omerrors "github.com/A2Zi/ByscriptsObjectManagerBundle/pkg/errors"
)

func seedArticles(t *testing.T, db *gorm.DB, articles ...*testutil.Article) {
	t.Helper()
	for _, a := range articles {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		if err := db.Create(a).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestFind(t *testing.T) {
	db := testutil.DB(t)
	repo := New[*testutil.Article](db, testutil.Logger(t))
	ctx := context.Background()

	art := testutil.NewArticle("Found", "found")
	seedArticles(t, db, art)

	got, err := repo.Find(ctx, art.ID, LockNone, nil)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got == nil || got.ID != art.ID {
		t.Fatalf("Find: unexpected result: %+v", got)
	}
}

func TestFindMissingReturnsNil(t *testing.T) {
	db := testutil.DB(t)
	repo := New[*testutil.Article](db, testutil.Logger(t))

	got, err := repo.Find(context.Background(), uuid.New(), LockNone, nil)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got != nil {
		t.Fatalf("Find: expected nil for missing row, got %+v", got)
	}
}

func TestFindOptimisticLock(t *testing.T) {
	db := testutil.DB(t)
	repo := New[*testutil.Article](db, testutil.Logger(t))
	ctx := context.Background()

	art := testutil.NewArticle("Versioned", "versioned")
	art.Version = 3
	seedArticles(t, db, art)

	current := 3
	got, err := repo.Find(ctx, art.ID, LockOptimistic, &current)
	if err != nil {
		t.Fatalf("Find (matching version): %v", err)
	}
	if got == nil {
		t.Fatalf("Find (matching version): expected object")
	}

	stale := 2
	got, err = repo.Find(ctx, art.ID, LockOptimistic, &stale)
	if err == nil {
		t.Fatalf("Find (stale version): expected failure")
	}
	if _, ok := omerrors.AsPersistence(err); !ok {
		t.Fatalf("Find (stale version): expected a persistence failure, got %v", err)
	}
	if got != nil {
		t.Fatalf("Find (stale version): expected no object, got %+v", got)
	}
}

func TestFindAll(t *testing.T) {
	db := testutil.DB(t)
	repo := New[*testutil.Article](db, testutil.Logger(t))

	seedArticles(t, db,
		testutil.NewArticle("One", "one"),
		testutil.NewArticle("Two", "two"),
		testutil.NewArticle("Three", "three"),
	)

	all, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("FindAll: expected 3, got %d", len(all))
	}
}

func TestFindBy(t *testing.T) {
	db := testutil.DB(t)
	repo := New[*testutil.Article](db, testutil.Logger(t))
	ctx := context.Background()

	inactive := testutil.NewArticle("Archive", "archive")
	inactive.Active = false
	seedArticles(t, db,
		testutil.NewArticle("Banana", "banana"),
		testutil.NewArticle("Apple", "apple"),
		testutil.NewArticle("Cherry", "cherry"),
		inactive,
	)

	active, err := repo.FindBy(ctx, Criteria{"active": true}, []Order{{Field: "title"}}, 0, 0)
	if err != nil {
		t.Fatalf("FindBy: %v", err)
	}
	if len(active) != 3 {
		t.Fatalf("FindBy: expected 3 active, got %d", len(active))
	}
	if active[0].Title != "Apple" || active[2].Title != "Cherry" {
		t.Fatalf("FindBy: wrong ordering: %q .. %q", active[0].Title, active[2].Title)
	}

	page, err := repo.FindBy(ctx, Criteria{"active": true}, []Order{{Field: "title", Desc: true}}, 1, 1)
	if err != nil {
		t.Fatalf("FindBy (paged): %v", err)
	}
	if len(page) != 1 || page[0].Title != "Banana" {
		t.Fatalf("FindBy (paged): unexpected page: %+v", page)
	}
}

func TestFindOneBy(t *testing.T) {
	db := testutil.DB(t)
	repo := New[*testutil.Article](db, testutil.Logger(t))
	ctx := context.Background()

	seedArticles(t, db,
		testutil.NewArticle("Unique", "unique-slug"),
		testutil.NewArticle("Other", "other-slug"),
	)

	got, err := repo.FindOneBy(ctx, Criteria{"slug": "unique-slug"}, nil)
	if err != nil {
		t.Fatalf("FindOneBy: %v", err)
	}
	if got == nil || got.Slug != "unique-slug" {
		t.Fatalf("FindOneBy: unexpected result: %+v", got)
	}

	got, err = repo.FindOneBy(ctx, Criteria{"slug": "nope"}, nil)
	if err != nil {
		t.Fatalf("FindOneBy (missing): %v", err)
	}
	if got != nil {
		t.Fatalf("FindOneBy (missing): expected nil, got %+v", got)
	}
}
