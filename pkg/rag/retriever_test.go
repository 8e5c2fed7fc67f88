package rag

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asesor-legal-be/internal/entity"
	"asesor-legal-be/internal/repository/contract"
	"asesor-legal-be/pkg/embedding"
)

type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) Generate(text, taskType string) (*embedding.EmbeddingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: []float32{0.1, 0.2, 0.3}},
	}, nil
}

type fakeChunkRepo struct {
	chunks    []*contract.ScoredLawChunk
	err       error
	lastLimit int
}

func (f *fakeChunkRepo) Create(ctx context.Context, chunk *entity.LawChunk) error        { return nil }
func (f *fakeChunkRepo) CreateBulk(ctx context.Context, chunks []*entity.LawChunk) error { return nil }
func (f *fakeChunkRepo) ExistsByHash(ctx context.Context, hash string) (bool, error) {
	return false, nil
}
func (f *fakeChunkRepo) DeleteBySourceFile(ctx context.Context, sourceFile string) error { return nil }
func (f *fakeChunkRepo) Count(ctx context.Context) (int64, error)                        { return 0, nil }

func (f *fakeChunkRepo) SearchSimilarWithScore(ctx context.Context, emb []float32, limit int, threshold float64) ([]*contract.ScoredLawChunk, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.chunks) {
		return f.chunks[:limit], nil
	}
	return f.chunks, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func scoredChunk(content string, similarity float64) *contract.ScoredLawChunk {
	return &contract.ScoredLawChunk{
		Chunk:      &entity.LawChunk{Content: content},
		Similarity: similarity,
	}
}

func TestSearchReturnsContentInSimilarityOrder(t *testing.T) {
	repo := &fakeChunkRepo{chunks: []*contract.ScoredLawChunk{
		scoredChunk("fragmento uno", 0.9),
		scoredChunk("fragmento dos", 0.8),
	}}
	r := NewRetriever(&fakeEmbedder{}, repo, nopLogger{}, 15)

	fragments := r.Search(context.Background(), "plazos de apelación", 10)
	require.Len(t, fragments, 2)
	assert.Equal(t, "fragmento uno", fragments[0])
	assert.Equal(t, 10, repo.lastLimit)
}

func TestSearchArticleBias(t *testing.T) {
	repo := &fakeChunkRepo{chunks: []*contract.ScoredLawChunk{
		scoredChunk("disposiciones generales del procedimiento", 0.95),
		scoredChunk("la referencia al numeral 45 del expediente", 0.90),
		scoredChunk("Artículo 45. Garantías de fiel cumplimiento", 0.50),
	}}
	r := NewRetriever(&fakeEmbedder{}, repo, nopLogger{}, 15)

	fragments := r.Search(context.Background(), "¿Qué dice el artículo 45 de la ley?", 10)
	require.Len(t, fragments, 3)

	// Header match first, numeric-token match second, rest last.
	assert.Contains(t, fragments[0], "Artículo 45")
	assert.Contains(t, fragments[1], "numeral 45")
	assert.Contains(t, fragments[2], "disposiciones generales")

	// The article reference widens retrieval.
	assert.Equal(t, widenedK, repo.lastLimit)
}

func TestSearchDefaultsAndFloor(t *testing.T) {
	many := make([]*contract.ScoredLawChunk, 20)
	for i := range many {
		many[i] = scoredChunk(fmt.Sprintf("fragmento %d", i), 1.0-float64(i)*0.01)
	}
	repo := &fakeChunkRepo{chunks: many}
	r := NewRetriever(&fakeEmbedder{}, repo, nopLogger{}, 8)

	// k <= 0 falls back to the configured topK.
	fragments := r.Search(context.Background(), "consulta", 0)
	assert.Len(t, fragments, 8)

	// After a widened, article-biased retrieval the cut never drops below 5.
	fragments = r.Search(context.Background(), "artículo 7", 2)
	assert.Len(t, fragments, 5)
}

func TestSearchDegradesToNil(t *testing.T) {
	r := NewRetriever(&fakeEmbedder{err: fmt.Errorf("provider unavailable")},
		&fakeChunkRepo{}, nopLogger{}, 15)
	assert.Nil(t, r.Search(context.Background(), "consulta", 10))

	r = NewRetriever(&fakeEmbedder{},
		&fakeChunkRepo{err: fmt.Errorf("connection refused")}, nopLogger{}, 15)
	assert.Nil(t, r.Search(context.Background(), "consulta", 10))
}
