package implementation

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"asesor-legal-be/internal/entity"
	"asesor-legal-be/internal/mapper"
	"asesor-legal-be/internal/model"
	"asesor-legal-be/internal/repository/contract"
)

type LawChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LawChunkMapper
}

func NewLawChunkRepository(db *gorm.DB) contract.LawChunkRepository {
	return &LawChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewLawChunkMapper(),
	}
}

func (r *LawChunkRepositoryImpl) Create(ctx context.Context, chunk *entity.LawChunk) error {
	m := r.mapper.ToModel(chunk)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*chunk = *r.mapper.ToEntity(m)
	return nil
}

func (r *LawChunkRepositoryImpl) CreateBulk(ctx context.Context, chunks []*entity.LawChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	models := make([]*model.LawChunk, len(chunks))
	for i, c := range chunks {
		models[i] = r.mapper.ToModel(c)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	// Update IDs back to entities
	for i, m := range models {
		*chunks[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *LawChunkRepositoryImpl) ExistsByHash(ctx context.Context, hash string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.LawChunk{}).
		Where("content_hash = ?", hash).
		Count(&count).Error
	return count > 0, err
}

func (r *LawChunkRepositoryImpl) DeleteBySourceFile(ctx context.Context, sourceFile string) error {
	return r.db.WithContext(ctx).
		Where("source_file = ?", sourceFile).
		Delete(&model.LawChunk{}).Error
}

func (r *LawChunkRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.LawChunk{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore returns chunks with similarity scores, filtered by threshold
func (r *LawChunkRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredLawChunk, error) {
	if limit <= 0 {
		limit = 5
	}

	// Cosine distance in pgvector is: 1 - cosine_similarity
	// So we compute: 1 - (embedding_value <=> query_vector) = cosine_similarity
	type result struct {
		model.LawChunk
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("law_chunks").
		Select("law_chunks.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Where("law_chunks.deleted_at IS NULL").
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredLawChunk, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredLawChunk{
			Chunk:      r.mapper.ToEntity(&res.LawChunk),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
