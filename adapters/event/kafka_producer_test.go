package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yun0-0514/dev-blog/internal/config"
	"github.com/yun0-0514/dev-blog/internal/domain/about"
	"github.com/yun0-0514/dev-blog/pkg/logger"
)

type mockWriter struct {
	mock.Mock
}

func (m *mockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *mockWriter) Close() error {
	return m.Called().Error(0)
}

func TestPublishProfileEvent_RoundTrip(t *testing.T) {
	w := new(mockWriter)
	client := &KafkaProducerClient{AboutEventsWriter: w, logger: logger.NewNopLogger()}

	evt := about.Event{
		EventType:  about.EventProfileCreated,
		ProfileID:  uuid.New(),
		ActorID:    "u1",
		OccurredAt: time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
	}

	var sent []kafka.Message
	w.On("WriteMessages", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).([]kafka.Message) }).
		Return(nil)

	require.NoError(t, client.PublishProfileEvent(context.Background(), evt))
	require.Len(t, sent, 1)
	assert.Equal(t, evt.ProfileID.String(), string(sent[0].Key))
	assert.Equal(t, "profile.created", string(sent[0].Headers[0].Value))

	decoded, err := DecodeProfileEvent(sent[0])
	require.NoError(t, err)
	assert.Equal(t, evt, decoded)
	w.AssertExpectations(t)
}

func TestPublishProfileEvent_WriterError(t *testing.T) {
	w := new(mockWriter)
	w.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("broker down"))
	client := &KafkaProducerClient{AboutEventsWriter: w, logger: logger.NewNopLogger()}

	err := client.PublishProfileEvent(context.Background(), about.Event{EventType: about.EventProfileUpdated})
	assert.ErrorContains(t, err, "broker down")
}

func TestDecodeProfileEvent_Rejects(t *testing.T) {
	_, err := DecodeProfileEvent(kafka.Message{Value: []byte("not json")})
	assert.Error(t, err)

	_, err = DecodeProfileEvent(kafka.Message{Value: []byte(`{"profile_id":"00000000-0000-0000-0000-000000000000"}`)})
	assert.Error(t, err)
}

func TestNewKafkaProducerClient_RequiresBrokers(t *testing.T) {
	_, err := NewKafkaProducerClient(config.Config{}, logger.NewNopLogger())
	assert.Error(t, err)
}
