package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"route-metrics-service/internal/platform/obs"
	"route-metrics-service/internal/ports"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
)

const (
	RouteComputedType = "route.computed"
	eventSource       = "route-metrics-service"
)

// CloudEvent is the envelope written to the route events topic.
type CloudEvent struct {
	ID              string          `json:"id"`
	Source          string          `json:"source"`
	Type            string          `json:"type"`
	Time            time.Time       `json:"time"`
	DataContentType string          `json:"datacontenttype"`
	Data            json.RawMessage `json:"data"`
}

// messageWriter is the subset of *kafka.Writer used by the publisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// KafkaRoutePublisher publishes route events to Kafka, keyed by route id so
// that events for one route stay ordered within a partition.
type KafkaRoutePublisher struct {
	writer messageWriter
}

func NewKafkaRoutePublisher(brokers []string, topic string) (*KafkaRoutePublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka publisher: no brokers configured")
	}
	if topic == "" {
		return nil, errors.New("kafka publisher: topic is empty")
	}

	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
		WriteTimeout: 5 * time.Second,
	}
	return &KafkaRoutePublisher{writer: w}, nil
}

func (p *KafkaRoutePublisher) PublishRouteComputed(ctx context.Context, evt ports.RouteComputedEvent) (err error) {
	defer obs.Time(ctx, "events.PublishRouteComputed")(&err)

	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("publish route event: marshal data: %w", err)
	}

	envelope := CloudEvent{
		ID:              uuid.NewString(),
		Source:          eventSource,
		Type:            RouteComputedType,
		Time:            evt.ComputedAt,
		DataContentType: "application/json",
		Data:            data,
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("publish route event: marshal envelope: %w", err)
	}

	msg := kafkago.Message{
		Key:   []byte(evt.RouteID),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "ce_type", Value: []byte(RouteComputedType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish route event %q: %w", evt.RouteID, err)
	}
	return nil
}

func (p *KafkaRoutePublisher) Close() error {
	return p.writer.Close()
}
