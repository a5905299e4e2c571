package testutil

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Article is the fixture entity the suite drives the facade with. It carries
// every capability the manager can use: identity, active flag and an
// optimistic lock version.
type Article struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title     string
	Slug      string `gorm:"index"`
	Active    bool
	Version   int
	Metadata  datatypes.JSONMap
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *Article) GetID() uuid.UUID      { return a.ID }
func (a *Article) SetID(id uuid.UUID)    { a.ID = id }
func (a *Article) SetActive(active bool) { a.Active = active }
func (a *Article) IsActive() bool        { return a.Active }
func (a *Article) ObjectVersion() int    { return a.Version }

func NewArticle(title, slug string) *Article {
	return &Article{
		Title:    title,
		Slug:     slug,
		Active:   true,
		Version:  1,
		Metadata: datatypes.JSONMap{},
	}
}
