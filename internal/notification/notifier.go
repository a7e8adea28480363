package notification

import (
	"context"

	"github.com/wb-go/wbf/logger"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/service/ports"
)

// EmailNotifier sends the thank-you email, either directly over SMTP or by
// publishing it to the queue, depending on the sender it was built with.
type EmailNotifier struct {
	sender confirmationSender
	logger logger.Logger
}

func NewEmailNotifier(sender confirmationSender, logger logger.Logger) *EmailNotifier {
	return &EmailNotifier{sender: sender, logger: logger}
}

func (n *EmailNotifier) NotifyRegistered(ctx context.Context, reg *domain.Registration, bootcamp *domain.Bootcamp) {
	if n.sender == nil {
		n.logger.Debug("confirmation skipped (mail disabled)",
			logger.String("registration_id", reg.ID),
		)
		return
	}

	c := domain.NewConfirmation(reg, bootcamp)
	if err := n.sender.Send(ctx, c); err != nil {
		n.logger.Error("failed to dispatch confirmation",
			logger.String("registration_id", reg.ID),
			logger.String("to", c.To),
			logger.String("error", err.Error()),
		)
	}
}

// Fanout delivers to every notifier in order.
type Fanout []ports.RegistrationNotifier

func (f Fanout) NotifyRegistered(ctx context.Context, reg *domain.Registration, bootcamp *domain.Bootcamp) {
	for _, n := range f {
		n.NotifyRegistered(ctx, reg, bootcamp)
	}
}
