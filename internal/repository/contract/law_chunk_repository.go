package contract

import (
	"context"

	"asesor-legal-be/internal/entity"
)

// ScoredLawChunk wraps LawChunk with its similarity score
type ScoredLawChunk struct {
	Chunk      *entity.LawChunk
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type LawChunkRepository interface {
	Create(ctx context.Context, chunk *entity.LawChunk) error
	CreateBulk(ctx context.Context, chunks []*entity.LawChunk) error
	ExistsByHash(ctx context.Context, hash string) (bool, error)
	DeleteBySourceFile(ctx context.Context, sourceFile string) error
	Count(ctx context.Context) (int64, error)
	// SearchSimilarWithScore returns chunks with their similarity scores, filtered by threshold
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredLawChunk, error)
}
