package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"asesor-legal-be/internal/dto"
	"asesor-legal-be/internal/pkg/logger"
)

// maxIngestAttempts bounds redelivery: the gochannel subscriber redelivers a
// nacked message immediately, so an unprocessable file would otherwise spin.
const maxIngestAttempts = 3

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	ingest    IIngestService
	logger    logger.ILogger

	mu       sync.Mutex
	attempts map[string]int // message UUID -> failed attempts
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	ingest IIngestService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		ingest:    ingest,
		logger:    log,
		attempts:  make(map[string]int),
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishIngestFileMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal ingest message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	added, skipped, err := cs.ingest.ProcessFile(ctx, payload.Path)
	if err != nil {
		attempt := cs.recordFailure(msg.UUID)
		if attempt >= maxIngestAttempts {
			cs.logger.Error("consumer", "ingest job dropped after retries", map[string]interface{}{
				"path":     payload.Path,
				"attempts": attempt,
				"error":    err.Error(),
			})
			cs.forget(msg.UUID)
			msg.Ack() // Give up; redelivering again would not help
			return
		}
		cs.logger.Error("consumer", "ingest job failed", map[string]interface{}{
			"path":    payload.Path,
			"attempt": attempt,
			"error":   err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	cs.forget(msg.UUID)
	cs.logger.Info("consumer", "ingest job done", map[string]interface{}{
		"path":    payload.Path,
		"added":   added,
		"skipped": skipped,
	})
	msg.Ack()
}

func (cs *consumerService) recordFailure(uuid string) int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.attempts[uuid]++
	return cs.attempts[uuid]
}

func (cs *consumerService) forget(uuid string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	delete(cs.attempts, uuid)
}
