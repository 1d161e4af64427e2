package service

import (
	"context"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
	"github.com/Astemirdum/bookcourier/pkg/kafka"
)

// Publisher delivers lifecycle events to the stats pipeline.
type Publisher interface {
	Publish(ctx context.Context, event model.Event) error
}

type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(producer sarama.SyncProducer) Publisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    kafka.EventsTopic,
	}
}

func (p *kafkaPublisher) Publish(_ context.Context, event model.Event) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.EntityID),
		Value: sarama.ByteEncoder(data),
	}
	_, _, err = p.producer.SendMessage(msg)
	return err
}

// NopPublisher drops events; used when Kafka is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, model.Event) error { return nil }
