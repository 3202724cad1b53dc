// Package kafka publishes JSON messages to a single Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type Producer interface {
	SendMessage(ctx context.Context, key string, message interface{}) error
	Close() error
}

type kafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer connects to brokers (comma separated) and makes sure topic
// exists. It returns a logging mock producer when brokers is empty or
// unreachable, so publishing never blocks the caller on a missing broker.
func NewProducer(ctx context.Context, brokers, topic string) Producer {
	addrs := splitBrokers(brokers)
	if len(addrs) == 0 {
		logrus.Warn("Kafka brokers not configured, using mock producer")
		return &mockProducer{topic: topic}
	}

	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	conn, err := kafka.DialContext(dialCtx, "tcp", addrs[0])
	if err != nil {
		logrus.WithError(err).WithField("brokers", brokers).Warn("Kafka connection failed, using mock producer")
		return &mockProducer{topic: topic}
	}
	defer conn.Close()

	err = conn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	if err != nil {
		logrus.WithError(err).WithField("topic", topic).Debug("Could not create topic (might already exist)")
	}

	logrus.WithFields(logrus.Fields{
		"brokers": brokers,
		"topic":   topic,
	}).Info("Connected to Kafka")

	return &kafkaProducer{
		topic: topic,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(addrs...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 10 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *kafkaProducer) SendMessage(ctx context.Context, key string, message interface{}) error {
	msg, err := newMessage(key, message, time.Now())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to topic %s: %w", p.topic, err)
	}

	logrus.WithField("topic", p.topic).Debug("Message sent to Kafka")
	return nil
}

func (p *kafkaProducer) Close() error {
	return p.writer.Close()
}

func newMessage(key string, message interface{}, now time.Time) (kafka.Message, error) {
	value, err := json.Marshal(message)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal message: %w", err)
	}
	return kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  now,
	}, nil
}

func splitBrokers(brokers string) []string {
	var addrs []string
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			addrs = append(addrs, b)
		}
	}
	return addrs
}

// mockProducer logs messages when no broker is available.
type mockProducer struct {
	topic string
}

func (m *mockProducer) SendMessage(ctx context.Context, key string, message interface{}) error {
	logrus.WithFields(logrus.Fields{
		"topic":   m.topic,
		"key":     key,
		"message": message,
	}).Info("MOCK: Kafka message")
	return nil
}

func (m *mockProducer) Close() error {
	return nil
}
