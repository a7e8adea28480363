package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wb-go/wbf/logger"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
)

type consumer interface {
	Consume(ctx context.Context, handler func(ctx context.Context, body []byte) error) error
}

type confirmationSender interface {
	Send(ctx context.Context, c domain.Confirmation) error
}

// Worker drains the confirmation queue into the mail relay.
type Worker struct {
	queue  consumer
	sender confirmationSender
	logger logger.Logger
	done   chan struct{}
}

func NewWorker(queue consumer, sender confirmationSender, logger logger.Logger) *Worker {
	return &Worker{
		queue:  queue,
		sender: sender,
		logger: logger,
		done:   make(chan struct{}),
	}
}

func (w *Worker) Start(ctx context.Context) {
	defer close(w.done)

	w.logger.Info("confirmation worker started")

	if err := w.queue.Consume(ctx, w.handle); err != nil {
		w.logger.Error("confirmation worker failed",
			logger.String("error", err.Error()),
		)
		return
	}

	w.logger.Info("confirmation worker stopped")
}

// Done is closed once Start returns.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

func (w *Worker) handle(ctx context.Context, body []byte) error {
	var c domain.Confirmation
	if err := json.Unmarshal(body, &c); err != nil {
		w.logger.Error("malformed confirmation message",
			logger.String("error", err.Error()),
		)
		// nothing to retry
		return nil
	}

	if err := w.sender.Send(ctx, c); err != nil {
		w.logger.Warn("failed to send confirmation email",
			logger.String("to", c.To),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("send confirmation: %w", err)
	}

	w.logger.Info("confirmation email sent",
		logger.String("to", c.To),
		logger.String("bootcamp", c.BootcampName),
	)
	return nil
}
