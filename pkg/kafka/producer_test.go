package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBrokers(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "kafka:9092", want: []string{"kafka:9092"}},
		{in: "a:9092, b:9092,,", want: []string{"a:9092", "b:9092"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, splitBrokers(tt.in))
		})
	}
}

func TestNewMessage(t *testing.T) {
	now := time.Date(2026, 11, 7, 21, 0, 0, 0, time.UTC)
	msg, err := newMessage("feed", map[string]int{"count": 3}, now)
	require.NoError(t, err)

	assert.Equal(t, []byte("feed"), msg.Key)
	assert.JSONEq(t, `{"count":3}`, string(msg.Value))
	assert.Equal(t, now, msg.Time)
	assert.Empty(t, msg.Topic)

	_, err = newMessage("feed", make(chan int), now)
	assert.Error(t, err)
}

func TestNewProducerWithoutBrokersIsMock(t *testing.T) {
	p := NewProducer(context.Background(), "", "feed.refreshed")
	require.IsType(t, &mockProducer{}, p)

	assert.NoError(t, p.SendMessage(context.Background(), "feed", map[string]int{"count": 1}))
	assert.NoError(t, p.Close())
}
