package notify

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	tgbot "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"

	"smc_bot/internal/models"
	"smc_bot/pkg/logger"
)

// Telegram отправляет сигналы в чат с разметкой MarkdownV2.
type Telegram struct {
	bot    *tgbot.BotAPI
	chatID string
}

// NewTelegram chatID может быть числом или @channel. Пустой chatID допустим.
func NewTelegram(token, chatID string) (*Telegram, error) {
	return newTelegram(token, chatID, tgbot.APIEndpoint, &http.Client{})
}

func newTelegram(token, chatID, endpoint string, client tgbot.HTTPClient) (*Telegram, error) {
	b, err := tgbot.NewBotAPIWithClient(token, endpoint, client)
	if err != nil {
		return nil, errors.Wrap(err, "telegram: init bot")
	}
	logger.Info("telegram: authorized as @%s", b.Self.UserName)
	return &Telegram{bot: b, chatID: strings.TrimSpace(chatID)}, nil
}

func (t *Telegram) Notify(ctx context.Context, symbol string, sig models.Signal) error {
	return t.send(ctx, formatSignal(symbol, sig, escape))
}

func (t *Telegram) Send(ctx context.Context, msg string) error {
	return t.send(ctx, escape(msg))
}

func (t *Telegram) send(ctx context.Context, text string) error {
	if t.chatID == "" {
		return ErrMissingChatID
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg tgbot.MessageConfig
	if id, err := strconv.ParseInt(t.chatID, 10, 64); err == nil {
		msg = tgbot.NewMessage(id, text)
	} else {
		msg = tgbot.NewMessageToChannel(t.chatID, text)
	}
	msg.ParseMode = tgbot.ModeMarkdownV2

	if _, err := t.bot.Send(msg); err != nil {
		return errors.Wrapf(err, "telegram: send to %s", t.chatID)
	}
	return nil
}

func escape(s string) string { return tgbot.EscapeText(tgbot.ModeMarkdownV2, s) }
