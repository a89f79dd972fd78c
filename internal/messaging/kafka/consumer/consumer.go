package consumer

import (
	"context"
	"encoding/json"
	"errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the loops use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// errSkip marks a message that must be committed without processing.
var errSkip = errors.New("skip message")

// run fetches messages until ctx is done. A message is committed when handle
// succeeds or returns errSkip; any other error leaves it uncommitted so the
// group redelivers it after a rebalance.
func run(ctx context.Context, reader MessageReader, log *zap.Logger, handle func(context.Context, kafkago.Message) error) {
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		if err := handle(ctx, msg); err != nil && !errors.Is(err, errSkip) {
			log.Error("handle message failed",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		}
	}
}

func decode(msg kafkago.Message, v any, log *zap.Logger) error {
	if err := json.Unmarshal(msg.Value, v); err != nil {
		log.Error("decode event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		return errSkip
	}
	return nil
}
