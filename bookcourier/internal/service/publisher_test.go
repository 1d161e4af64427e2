package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
	"github.com/Astemirdum/bookcourier/bookcourier/internal/service"
)

func TestKafkaPublisher_Publish(t *testing.T) {
	t.Parallel()

	event := model.Event{
		Type:       model.EventOrderCreated,
		EntityID:   orderID,
		Actor:      "a@x.com",
		OccurredAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			var got model.Event
			if err := jsoniter.Unmarshal(val, &got); err != nil {
				return err
			}
			require.Equal(t, event, got)
			return nil
		})
		t.Cleanup(func() { require.NoError(t, producer.Close()) })

		require.NoError(t, service.NewKafkaPublisher(producer).Publish(context.Background(), event))
	})

	t.Run("broker down", func(t *testing.T) {
		t.Parallel()
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
		t.Cleanup(func() { require.NoError(t, producer.Close()) })

		err := service.NewKafkaPublisher(producer).Publish(context.Background(), event)
		require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	})
}
