package eventbus

import "context"

type Consumer interface {
	Consume(ctx context.Context, event Event) error
	GetWorkerCount() int
}

// Publisher is the write side of the bus that services depend on.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
