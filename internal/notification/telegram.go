package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/Kevin30042001/Bootcamp-Tech-Platform/internal/domain"
)

// TelegramNotifier alerts the admins' chat about every new registration.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, log logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		log.Warn("telegram bot token or chat id is empty, admin alerts disabled")
		return &TelegramNotifier{bot: nil, logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: log}, nil
}

func (n *TelegramNotifier) NotifyRegistered(ctx context.Context, reg *domain.Registration, bootcamp *domain.Bootcamp) {
	n.send(ctx, RegistrationAlert(reg, bootcamp))
}

// RegistrationAlert is the admin chat text for a new registration.
func RegistrationAlert(reg *domain.Registration, bootcamp *domain.Bootcamp) string {
	c := domain.NewConfirmation(reg, bootcamp)
	return fmt.Sprintf(
		"Nueva inscripción\n\n"+"Bootcamp: %s\n"+"Alumno: %s\n"+"Horario: %s\n"+"Fecha de inicio: %s\n"+"Plan de pago: %s",
		reg.BootcampName, reg.UserEmail, c.Schedule, reg.StartDate, reg.PaymentPlan,
	)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("admin alert skipped (bot disabled)")
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("admin alert skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		n.logger.Error("failed to send telegram alert",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
