package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/HallBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const slotTimeFormat = "02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, user *domain.User, venue *domain.Venue, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking request received*\n\n"+"Venue: %s\n"+"Slot (UTC): %s - %s\n"+"Total: %s\n"+"Waiting for the owner's decision.",
		venue.Name,
		booking.Range.Start.Format(slotTimeFormat),
		booking.Range.End.Format(slotTimeFormat),
		booking.TotalAmount.StringFixed(2),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingApproved(ctx context.Context, user *domain.User, venue *domain.Venue, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking approved!*\n\n"+"Venue: %s\n"+"Slot (UTC): %s - %s",
		venue.Name,
		booking.Range.Start.Format(slotTimeFormat),
		booking.Range.End.Format(slotTimeFormat),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingRejected(ctx context.Context, user *domain.User, venue *domain.Venue, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking rejected*\n\n"+"Venue: %s\n"+"Slot (UTC): %s - %s",
		venue.Name,
		booking.Range.Start.Format(slotTimeFormat),
		booking.Range.End.Format(slotTimeFormat),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, user *domain.User, venue *domain.Venue, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\n"+"Venue: %s\n"+"Slot (UTC): %s - %s",
		venue.Name,
		booking.Range.Start.Format(slotTimeFormat),
		booking.Range.End.Format(slotTimeFormat),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCompleted(ctx context.Context, user *domain.User, venue *domain.Venue, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking completed*\n\n"+"Venue: %s\n"+"Slot (UTC): %s - %s\n"+"Thank you for booking with us!",
		venue.Name,
		booking.Range.Start.Format(slotTimeFormat),
		booking.Range.End.Format(slotTimeFormat),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
