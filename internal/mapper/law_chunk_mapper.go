package mapper

import (
	"time"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"asesor-legal-be/internal/entity"
	"asesor-legal-be/internal/model"
)

type LawChunkMapper struct{}

func NewLawChunkMapper() *LawChunkMapper {
	return &LawChunkMapper{}
}

func (m *LawChunkMapper) ToEntity(e *model.LawChunk) *entity.LawChunk {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.LawChunk{
		Id:             e.Id,
		SourceFile:     e.SourceFile,
		ChunkIndex:     e.ChunkIndex,
		Content:        e.Content,
		ContentHash:    e.ContentHash,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      e.DeletedAt.Valid,
	}
}

func (m *LawChunkMapper) ToModel(e *entity.LawChunk) *model.LawChunk {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.LawChunk{
		Id:             e.Id,
		SourceFile:     e.SourceFile,
		ChunkIndex:     e.ChunkIndex,
		Content:        e.Content,
		ContentHash:    e.ContentHash,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *LawChunkMapper) ToEntities(chunks []*model.LawChunk) []*entity.LawChunk {
	entities := make([]*entity.LawChunk, len(chunks))
	for i, c := range chunks {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
