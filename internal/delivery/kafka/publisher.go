package kafka

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
	kafka "github.com/segmentio/kafka-go"

	"github.com/TukaHeba/Optional-Task6/internal/models"
)

// OrderPublisher streams created orders to a kafka topic, keyed by order id
// so consumers see per-order messages in write order.
type OrderPublisher struct {
	writer *kafka.Writer
}

func NewOrderPublisher(brokers []string, topic string) *OrderPublisher {
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &OrderPublisher{writer: w}
}

func (p *OrderPublisher) PublishOrder(ctx context.Context, o models.Order) error {
	body, err := json.Marshal(o)
	if err != nil {
		return errors.Wrap(err, "marshal order event")
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(o.ID), 10)),
		Value: body,
	})
}

func (p *OrderPublisher) Close() error {
	return p.writer.Close()
}
