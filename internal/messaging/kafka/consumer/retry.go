package consumer

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Bounds of the wait between two attempts at the same message.
var (
	retryInitial = time.Second
	retryMax     = time.Minute
)

// retryInPlace runs op until it succeeds or ctx ends. The group reader has
// no per-message redelivery: the next fetch returns the next offset and its
// commit covers everything before it. A message must therefore be finished
// before the consumer fetches again.
func retryInPlace(ctx context.Context, log *zap.Logger, what string, op func(context.Context) error) error {
	delay := retryInitial
	for attempt := 1; ; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Warn(what+" failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", delay),
			zap.Error(err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay = min(delay*2, retryMax)
	}
}
