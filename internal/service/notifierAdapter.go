package service

import "context"

// FeedRefreshedKey keys every refresh message so they stay ordered on one
// partition.
const FeedRefreshedKey = "feed"

type MessageProducer interface {
	SendMessage(ctx context.Context, key string, message interface{}) error
}

// ProducerNotifier adapts a message producer to RefreshNotifier.
type ProducerNotifier struct {
	producer MessageProducer
}

func NewProducerNotifier(p MessageProducer) *ProducerNotifier {
	return &ProducerNotifier{producer: p}
}

func (n *ProducerNotifier) FeedRefreshed(ctx context.Context, event FeedRefreshed) error {
	if n.producer == nil {
		return nil
	}
	return n.producer.SendMessage(ctx, FeedRefreshedKey, event)
}
