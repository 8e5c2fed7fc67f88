package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type LawChunk struct {
	Id             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SourceFile     string          `gorm:"type:text;not null;index"`
	ChunkIndex     int             `gorm:"default:0"` // 0-based index for ordering
	Content        string          `gorm:"type:text"`
	ContentHash    string          `gorm:"type:char(64);uniqueIndex"` // sha256, dedupes re-ingestion
	EmbeddingValue pgvector.Vector `gorm:"type:vector(768)"`          // Gemini text-embedding-004 uses 768 dimensions
	CreatedAt      time.Time       `gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt  `gorm:"index"`
}

func (LawChunk) TableName() string {
	return "law_chunks"
}
