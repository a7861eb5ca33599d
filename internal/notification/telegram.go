package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/atln0/GigBooker/internal/domain"
)

// TelegramNotifier pushes booking lifecycle events to the DJ's chat.
// With no token or chat id configured it degrades to logging.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyOfferSubmitted(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*New booking offer*\n\n"+"From: %s\n"+"Event date: %s\n"+"Location: %s\n"+"Quoted total: %.2f",
		b.PromoterName, b.EventDate, b.Location, b.Total,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyStatusChanged(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking %s*\n\n"+"From: %s\n"+"Event date: %s",
		b.Status, b.PromoterName, b.EventDate,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyContractSigned(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Contract fully signed!*\n\n"+"With: %s\n"+"Event date: %s\n"+"Total: %.2f",
		b.PromoterName, b.EventDate, b.Total,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
