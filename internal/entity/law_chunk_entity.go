package entity

import (
	"time"

	"github.com/google/uuid"
)

// LawChunk is one embedded fragment of a normative document (ley, reglamento,
// directiva) in the knowledge base.
type LawChunk struct {
	Id             uuid.UUID
	SourceFile     string
	ChunkIndex     int
	Content        string
	ContentHash    string
	EmbeddingValue []float32
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
