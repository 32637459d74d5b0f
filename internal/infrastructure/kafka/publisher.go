package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/oplata-app/escrow-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type DefaultKafkaPublisher struct {
	writer *kafka.Writer
}

func NewDefaultKafkaPublisher(brokers []string) *DefaultKafkaPublisher {
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *DefaultKafkaPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	return k.writer.WriteMessages(context.Background(), km...)
}

func (k *DefaultKafkaPublisher) PublishOrder(topic string, event OrderEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(topic, domain.Message{Key: []byte(event.OrderID), Value: v})
}

func (k *DefaultKafkaPublisher) PublishDispute(topic string, event DisputeEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(topic, domain.Message{Key: []byte(event.OrderID), Value: v})
}
