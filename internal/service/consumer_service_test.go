package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asesor-legal-be/internal/dto"
)

type fakeIngest struct {
	err   error
	calls int
}

func (f *fakeIngest) QueueDirectory(ctx context.Context, dir string) (*dto.IngestSummary, error) {
	return &dto.IngestSummary{Directory: dir}, nil
}

func (f *fakeIngest) ProcessFile(ctx context.Context, path string) (int, int, error) {
	f.calls++
	if f.err != nil {
		return 0, 0, f.err
	}
	return 1, 0, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func ingestMessage(uuid string) *message.Message {
	return message.NewMessage(uuid, []byte(`{"path":"bases.pdf"}`))
}

func wasNacked(t *testing.T, msg *message.Message) bool {
	t.Helper()
	select {
	case <-msg.Nacked():
		return true
	case <-msg.Acked():
		return false
	default:
		t.Fatal("message neither acked nor nacked")
		return false
	}
}

func TestProcessMessageRetriesThenDrops(t *testing.T) {
	ingest := &fakeIngest{err: fmt.Errorf("embedding backend down")}
	cs := NewConsumerService(nil, "topic", ingest, nopLogger{}).(*consumerService)
	ctx := context.Background()

	// Redeliveries of the same job keep the UUID; the first two are nacked.
	m1 := ingestMessage("job-1")
	cs.processMessage(ctx, m1)
	assert.True(t, wasNacked(t, m1))

	m2 := ingestMessage("job-1")
	cs.processMessage(ctx, m2)
	assert.True(t, wasNacked(t, m2))

	// Third failure exhausts the bound: the message is dropped with an ack.
	m3 := ingestMessage("job-1")
	cs.processMessage(ctx, m3)
	assert.False(t, wasNacked(t, m3))
	assert.Equal(t, 3, ingest.calls)
}

func TestProcessMessageSuccessResetsAttempts(t *testing.T) {
	ingest := &fakeIngest{err: fmt.Errorf("transient failure")}
	cs := NewConsumerService(nil, "topic", ingest, nopLogger{}).(*consumerService)
	ctx := context.Background()

	m1 := ingestMessage("job-2")
	cs.processMessage(ctx, m1)
	require.True(t, wasNacked(t, m1))

	ingest.err = nil
	m2 := ingestMessage("job-2")
	cs.processMessage(ctx, m2)
	assert.False(t, wasNacked(t, m2))

	cs.mu.Lock()
	defer cs.mu.Unlock()
	assert.Empty(t, cs.attempts)
}

func TestProcessMessageAcksMalformedPayload(t *testing.T) {
	ingest := &fakeIngest{}
	cs := NewConsumerService(nil, "topic", ingest, nopLogger{}).(*consumerService)

	msg := message.NewMessage("job-3", []byte("not json"))
	cs.processMessage(context.Background(), msg)

	assert.False(t, wasNacked(t, msg))
	assert.Equal(t, 0, ingest.calls)
}
