package handler

import (
	"context"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
)

type saveEvent func(ctx context.Context, event model.Event) error

// Consumer stores lifecycle events read from the events topic.
type Consumer struct {
	save saveEvent
	log  *zap.Logger
}

var _ sarama.ConsumerGroupHandler = (*Consumer)(nil)

func NewConsumer(save saveEvent, log *zap.Logger) *Consumer {
	return &Consumer{
		save: save,
		log:  log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			consumer.handle(session.Context(), message)
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

// handle never fails the claim: undecodable messages are skipped, store
// errors are logged.
func (consumer *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) {
	var event model.Event
	if err := jsoniter.Unmarshal(message.Value, &event); err != nil {
		consumer.log.Error("decode event", zap.Error(err), zap.Int64("offset", message.Offset))
		return
	}
	if event.Type == "" {
		consumer.log.Warn("event without type", zap.Int64("offset", message.Offset))
		return
	}
	if err := consumer.save(ctx, event); err != nil {
		consumer.log.Error("save event", zap.String("type", string(event.Type)), zap.Error(err))
		return
	}
	consumer.log.Debug("event stored",
		zap.String("type", string(event.Type)),
		zap.String("entity", event.EntityID),
		zap.String("topic", message.Topic),
	)
}
