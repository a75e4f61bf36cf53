package runner

import (
	"context"
	"errors"

	"smc_bot/internal/exchange"
	"smc_bot/internal/notify"
	"smc_bot/internal/strategy"
)

type kind string

const (
	kindNoData     kind = "no_data"
	kindValidation kind = "validation"
	kindTransport  kind = "transport"
	kindConfig     kind = "config"
	kindNotify     kind = "notify"
	kindUnknown    kind = "unknown"
)

// notifyError ошибка доставки уведомления, чтобы отличать её от прочих.
type notifyError struct{ err error }

func (e *notifyError) Error() string { return "notify: " + e.err.Error() }
func (e *notifyError) Unwrap() error { return e.err }

func classify(err error) kind {
	var (
		verr *strategy.ValidationError
		terr *exchange.TransportError
		nerr *notifyError
	)
	switch {
	case errors.Is(err, exchange.ErrNoCandles):
		return kindNoData
	case errors.As(err, &verr), errors.Is(err, exchange.ErrMalformedResponse):
		return kindValidation
	case errors.Is(err, notify.ErrMissingChatID):
		return kindConfig
	case errors.As(err, &nerr):
		return kindNotify
	case errors.As(err, &terr), errors.Is(err, context.DeadlineExceeded):
		return kindTransport
	default:
		return kindUnknown
	}
}
