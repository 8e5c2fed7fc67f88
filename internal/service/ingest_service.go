package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"asesor-legal-be/internal/dto"
	"asesor-legal-be/internal/entity"
	"asesor-legal-be/internal/pkg/logger"
	"asesor-legal-be/internal/repository/contract"
	"asesor-legal-be/pkg/embedding"
	"asesor-legal-be/pkg/pdf"
	"asesor-legal-be/pkg/utils"
)

type IIngestService interface {
	// QueueDirectory publishes one embedding job per PDF found in dir.
	QueueDirectory(ctx context.Context, dir string) (*dto.IngestSummary, error)
	// ProcessFile extracts, chunks, embeds and persists one file synchronously.
	ProcessFile(ctx context.Context, path string) (added, skipped int, err error)
}

type ingestService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	extractor         pdf.Extractor
	embeddingProvider embedding.EmbeddingProvider
	chunks            contract.LawChunkRepository
	logger            logger.ILogger
	chunkSize         int
	chunkOverlap      int
}

func NewIngestService(
	pubSub *gochannel.GoChannel,
	topicName string,
	extractor pdf.Extractor,
	embeddingProvider embedding.EmbeddingProvider,
	chunks contract.LawChunkRepository,
	log logger.ILogger,
	chunkSize, chunkOverlap int,
) IIngestService {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		chunkOverlap = 200
	}
	return &ingestService{
		pubSub:            pubSub,
		topicName:         topicName,
		extractor:         extractor,
		embeddingProvider: embeddingProvider,
		chunks:            chunks,
		logger:            log,
		chunkSize:         chunkSize,
		chunkOverlap:      chunkOverlap,
	}
}

func (s *ingestService) QueueDirectory(ctx context.Context, dir string) (*dto.IngestSummary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read knowledge directory %s: %w", dir, err)
	}

	summary := &dto.IngestSummary{Directory: dir}
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		path := filepath.Join(dir, e.Name())

		payload, err := json.Marshal(dto.PublishIngestFileMessage{Path: path})
		if err != nil {
			return nil, err
		}
		if err := s.pubSub.Publish(s.topicName, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
			return nil, fmt.Errorf("publish ingest job for %s: %w", path, err)
		}
		summary.QueuedFiles = append(summary.QueuedFiles, e.Name())
	}

	if count, err := s.chunks.Count(ctx); err == nil {
		summary.StoredCount = count
	}
	summary.Summary = fmt.Sprintf("📚 %d archivo(s) en cola de indexación; %d fragmentos ya almacenados.",
		len(summary.QueuedFiles), summary.StoredCount)

	s.logger.Info("ingest", "directory queued", map[string]interface{}{
		"directory": dir,
		"files":     len(summary.QueuedFiles),
	})
	return summary, nil
}

func (s *ingestService) ProcessFile(ctx context.Context, path string) (int, int, error) {
	doc, err := s.extractor.Extract(path)
	if err != nil {
		return 0, 0, err
	}
	if strings.TrimSpace(doc.FullText) == "" {
		return 0, 0, fmt.Errorf("no extractable text in %s", path)
	}

	pieces := utils.SplitText(doc.FullText, s.chunkSize, s.chunkOverlap)

	var newChunks []*entity.LawChunk
	added, skipped := 0, 0
	for i, piece := range pieces {
		hash := contentHash(piece)

		exists, err := s.chunks.ExistsByHash(ctx, hash)
		if err != nil {
			return added, skipped, err
		}
		if exists {
			skipped++
			continue
		}

		res, err := s.embeddingProvider.Generate(piece, embedding.TaskRetrievalDocument)
		if err != nil {
			return added, skipped, fmt.Errorf("embed chunk %d of %s: %w", i, doc.Filename, err)
		}

		newChunks = append(newChunks, &entity.LawChunk{
			Id:             uuid.New(),
			SourceFile:     doc.Filename,
			ChunkIndex:     i,
			Content:        piece,
			ContentHash:    hash,
			EmbeddingValue: res.Embedding.Values,
			CreatedAt:      time.Now(),
		})
		added++
	}

	if len(newChunks) > 0 {
		if err := s.chunks.CreateBulk(ctx, newChunks); err != nil {
			return 0, skipped, err
		}
	}

	s.logger.Info("ingest", "file processed", map[string]interface{}{
		"file":    doc.Filename,
		"pages":   doc.Pages,
		"added":   added,
		"skipped": skipped,
	})
	return added, skipped, nil
}

func contentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
