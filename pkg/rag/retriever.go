// Package rag assembles retrieval context for the generative fallback: it
// embeds the query, searches the persistent chunk store and re-ranks results
// when the user asks for a specific article.
package rag

import (
	"context"
	"fmt"
	"regexp"

	"asesor-legal-be/internal/pkg/logger"
	"asesor-legal-be/internal/repository/contract"
	"asesor-legal-be/pkg/embedding"
)

// Retriever handles vector search over the law chunk store.
type Retriever struct {
	embeddingProvider embedding.EmbeddingProvider
	chunks            contract.LawChunkRepository
	logger            logger.ILogger
	topK              int
}

func NewRetriever(
	embeddingProvider embedding.EmbeddingProvider,
	chunks contract.LawChunkRepository,
	log logger.ILogger,
	topK int,
) *Retriever {
	if topK <= 0 {
		topK = 15
	}
	return &Retriever{
		embeddingProvider: embeddingProvider,
		chunks:            chunks,
		logger:            log,
		topK:              topK,
	}
}

// widenedK is how far retrieval is stretched when an article reference biases
// the ranking; the wanted article may sit far down the similarity order.
const widenedK = 300

var articleQueryRe = regexp.MustCompile(`(?i)\bart(?:[ií]culo)?\.?\s*(\d{1,4})\b`)

// Search returns the top fragments for the query, most relevant first.
// Retrieval failures degrade to an empty list; the caller must not block on
// retrieval.
func (r *Retriever) Search(ctx context.Context, query string, k int) []string {
	if k <= 0 {
		k = r.topK
	}

	embeddingRes, err := r.embeddingProvider.Generate(query, embedding.TaskRetrievalQuery)
	if err != nil {
		r.logger.Error("rag", "embedding generation failed", map[string]interface{}{"error": err.Error()})
		return nil
	}

	limit := k
	article, biased := extractArticleNumber(query)
	if biased {
		limit = widenedK
	}

	scored, err := r.chunks.SearchSimilarWithScore(ctx, embeddingRes.Embedding.Values, limit, 0)
	if err != nil {
		r.logger.Error("rag", "vector search failed", map[string]interface{}{"error": err.Error()})
		return nil
	}

	if biased {
		scored = rerankByArticle(scored, article)
	}

	max := k
	if max < 5 {
		max = 5
	}
	if len(scored) > max {
		scored = scored[:max]
	}

	fragments := make([]string, 0, len(scored))
	for _, s := range scored {
		fragments = append(fragments, s.Chunk.Content)
	}
	return fragments
}

func extractArticleNumber(query string) (string, bool) {
	m := articleQueryRe.FindStringSubmatch(query)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// rerankByArticle re-sorts chunks into three buckets: header matches for the
// article ("Artículo N." / "Art. N"), chunks merely containing the numeric
// token, and the rest. Similarity order is preserved within each bucket.
func rerankByArticle(scored []*contract.ScoredLawChunk, article string) []*contract.ScoredLawChunk {
	headerRe := regexp.MustCompile(fmt.Sprintf(`(?i)\bart(?:[ií]culo)?\.?\s*%s\b`, article))
	tokenRe := regexp.MustCompile(fmt.Sprintf(`\b%s\b`, article))

	var header, token, rest []*contract.ScoredLawChunk
	for _, s := range scored {
		switch {
		case headerRe.MatchString(s.Chunk.Content):
			header = append(header, s)
		case tokenRe.MatchString(s.Chunk.Content):
			token = append(token, s)
		default:
			rest = append(rest, s)
		}
	}

	out := make([]*contract.ScoredLawChunk, 0, len(scored))
	out = append(out, header...)
	out = append(out, token...)
	out = append(out, rest...)
	return out
}
