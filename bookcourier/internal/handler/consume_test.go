package handler_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/handler"
	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
)

type session struct {
	ctx    context.Context
	mu     sync.Mutex
	marked []int64
}

func (s *session) Claims() map[string][]int32 { return nil }
func (s *session) MemberID() string { return "member" }
func (s *session) GenerationID() int32 { return 1 }
func (s *session) MarkOffset(string, int32, int64, string) {}
func (s *session) Commit() {}
func (s *session) ResetOffset(string, int32, int64, string) {}
func (s *session) Context() context.Context { return s.ctx }
func (s *session) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marked = append(s.marked, msg.Offset)
}

type claim struct {
	messages chan *sarama.ConsumerMessage
}

func (c *claim) Topic() string { return "bookcourier.events" }
func (c *claim) Partition() int32 { return 0 }
func (c *claim) InitialOffset() int64 { return 0 }
func (c *claim) HighWaterMarkOffset() int64 { return 0 }
func (c *claim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func TestConsumer_ConsumeClaim(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	var (
		mu    sync.Mutex
		saved []model.Event
	)
	save := func(_ context.Context, event model.Event) error {
		if event.EntityID == "broken-store" {
			return errors.New("insert failed")
		}
		mu.Lock()
		defer mu.Unlock()
		saved = append(saved, event)
		return nil
	}

	cl := &claim{messages: make(chan *sarama.ConsumerMessage, 4)}
	cl.messages <- &sarama.ConsumerMessage{Offset: 0, Value: []byte(`{"type":"order.created","entityId":"o1","actor":"a@x.com","occurredAt":"2024-05-01T10:00:00Z"}`)}
	cl.messages <- &sarama.ConsumerMessage{Offset: 1, Value: []byte(`not json`)}
	cl.messages <- &sarama.ConsumerMessage{Offset: 2, Value: []byte(`{"entityId":"no-type"}`)}
	cl.messages <- &sarama.ConsumerMessage{Offset: 3, Value: []byte(`{"type":"book.deleted","entityId":"broken-store"}`)}
	close(cl.messages)

	sess := &session{ctx: context.Background()}
	consumer := handler.NewConsumer(save, zap.NewNop())
	require.NoError(t, consumer.Setup(sess))
	require.NoError(t, consumer.ConsumeClaim(sess, cl))
	require.NoError(t, consumer.Cleanup(sess))

	require.Equal(t, []model.Event{{
		Type:       model.EventOrderCreated,
		EntityID:   "o1",
		Actor:      "a@x.com",
		OccurredAt: at,
	}}, saved)
	require.Equal(t, []int64{0, 1, 2, 3}, sess.marked)
}

func TestConsumer_StopsOnSessionEnd(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	consumer := handler.NewConsumer(func(context.Context, model.Event) error { return nil }, zap.NewNop())
	require.NoError(t, consumer.ConsumeClaim(&session{ctx: ctx}, &claim{messages: make(chan *sarama.ConsumerMessage)}))
}
