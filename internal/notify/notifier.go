package notify

import (
	"context"
	"errors"

	"smc_bot/internal/models"
)

// ErrMissingChatID чат не задан. Проверяется при отправке, а не при старте.
var ErrMissingChatID = errors.New("telegram chat id is not set")

type Notifier interface {
	// Notify отправляет сигнал по инструменту. Ошибка доставки возвращается без повторов.
	Notify(ctx context.Context, symbol string, sig models.Signal) error
	// Send отправляет произвольный текст.
	Send(ctx context.Context, msg string) error
}
