package notify

import (
	"context"
	"strings"

	"smc_bot/internal/models"
	"smc_bot/pkg/logger"
)

// Stdout пишет сообщения в лог. Используется без токена бота.
// Без чата возвращает ErrMissingChatID, как и Telegram.
type Stdout struct {
	chatID string
}

func NewStdout(chatID string) *Stdout { return &Stdout{chatID: strings.TrimSpace(chatID)} }

func (s *Stdout) Notify(_ context.Context, symbol string, sig models.Signal) error {
	if s.chatID == "" {
		return ErrMissingChatID
	}
	logger.Info("[NOTIFY] chat=%s\n%s", s.chatID, FormatSignal(symbol, sig))
	return nil
}

func (s *Stdout) Send(_ context.Context, msg string) error {
	if s.chatID == "" {
		return ErrMissingChatID
	}
	logger.Info("[NOTIFY] chat=%s %s", s.chatID, msg)
	return nil
}
