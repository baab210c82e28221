package events

import (
	"context"
	"encoding/json"
	"errors"
	"route-metrics-service/internal/ports"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeWriter struct {
	msgs   []kafkago.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaRoutePublisher(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaRoutePublisher{writer: w}

	at := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	evt := ports.RouteComputedEvent{
		RouteID:           "r-1",
		VehicleType:       "ambulance",
		TotalDistance:     226.7,
		TotalDuration:     27.2,
		SafetyScore:       100,
		EmergencyPriority: true,
		ComputedAt:        at,
	}
	require.NoError(t, p.PublishRouteComputed(context.Background(), evt))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, []byte("r-1"), msg.Key)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, RouteComputedType, string(msg.Headers[0].Value))

	var ce CloudEvent
	require.NoError(t, json.Unmarshal(msg.Value, &ce))
	assert.Equal(t, RouteComputedType, ce.Type)
	assert.Equal(t, eventSource, ce.Source)
	assert.NotEmpty(t, ce.ID)
	assert.True(t, at.Equal(ce.Time))

	var got ports.RouteComputedEvent
	require.NoError(t, json.Unmarshal(ce.Data, &got))
	assert.Equal(t, evt.RouteID, got.RouteID)
	assert.Equal(t, evt.TotalDistance, got.TotalDistance)
	assert.True(t, got.EmergencyPriority)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaRoutePublisherWriteError(t *testing.T) {
	p := &KafkaRoutePublisher{writer: &fakeWriter{err: errors.New("leader not available")}}

	err := p.PublishRouteComputed(context.Background(), ports.RouteComputedEvent{RouteID: "r-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "r-1")
}

func TestNewKafkaRoutePublisherValidates(t *testing.T) {
	_, err := NewKafkaRoutePublisher(nil, "route.events")
	require.Error(t, err)

	_, err = NewKafkaRoutePublisher([]string{"localhost:9092"}, "")
	require.Error(t, err)

	p, err := NewKafkaRoutePublisher([]string{"localhost:9092"}, "route.events")
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestLogRoutePublisher(t *testing.T) {
	p := NewLogRoutePublisher(zap.NewNop())
	require.NoError(t, p.PublishRouteComputed(context.Background(), ports.RouteComputedEvent{RouteID: "r-1"}))
}
