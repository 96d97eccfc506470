package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts lifecycle updates to the club's operations channel.
// With an empty token it degrades to a no-op so local runs need no bot.
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

func (n *TelegramNotifier) NotifyBookingApproved(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронирование одобрено*\n\n"+"Заявитель: %s\n"+"Номер брони: %s",
		b.RequesterContact, b.ID,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingRejected(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Бронирование отклонено*\n\n"+"Заявитель: %s\n"+"Номер брони: %s",
		b.RequesterContact, b.ID,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyMemberPromoted(ctx context.Context, u *domain.User) {
	text := fmt.Sprintf(
		"*Новый член клуба!*\n\n"+"Имя: %s\n"+"Контакт: %s",
		u.Name, u.Contact,
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
