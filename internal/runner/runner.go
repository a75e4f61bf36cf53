package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"

	"smc_bot/internal/config"
	"smc_bot/internal/exchange"
	"smc_bot/internal/journal"
	"smc_bot/internal/metrics"
	"smc_bot/internal/models"
	"smc_bot/internal/modules/health/service"
	"smc_bot/internal/notify"
	"smc_bot/internal/strategy"
	"smc_bot/pkg/logger"
)

type signalChecker interface {
	Check(htf, ltf []models.Candle) (*models.Signal, error)
}

// Runner опрашивает биржу по списку символов с фиксированным интервалом
// и отправляет новые сигналы в notifier.
type Runner struct {
	source   exchange.CandleSource
	checker  signalChecker
	notifier notify.Notifier
	journal  journal.Journal
	metrics  *metrics.Recorder
	state    *service.State

	symbols  []string
	htf, ltf string
	lookback time.Duration
	interval time.Duration

	last lastSignals
	now  func() time.Time
}

func New(
	cfg *config.Config,
	source exchange.CandleSource,
	n notify.Notifier,
	j journal.Journal,
	rec *metrics.Recorder,
	state *service.State,
) *Runner {
	return &Runner{
		source:   source,
		checker:  strategy.NewComposer(cfg.RiskReward, cfg.Precision),
		notifier: n,
		journal:  j,
		metrics:  rec,
		state:    state,
		symbols:  append([]string(nil), cfg.Symbols...),
		htf:      cfg.HTF,
		ltf:      cfg.LTF,
		lookback: cfg.Lookback,
		interval: cfg.PollInterval,
		last:     make(lastSignals),
		now:      time.Now,
	}
}

// Start блокирует до отмены ctx. Первый цикл запускается сразу.
func (r *Runner) Start(ctx context.Context) {
	r.state.SetSymbols(len(r.symbols))
	logger.Info("[RUNNER] source=%s htf=%s ltf=%s symbols=%v", r.source.Name(), r.htf, r.ltf, r.symbols)

	if err := r.notifier.Send(ctx, fmt.Sprintf("📈 Watching %d symbols on %s", len(r.symbols), r.source.Name())); err != nil {
		logger.Warn("[RUNNER] startup notice not sent: %v", err)
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		r.runCycle(ctx)
		logger.Info("[RUNNER] waiting %s for next cycle", r.interval)

		select {
		case <-ctx.Done():
			logger.Info("[RUNNER] stopped")
			return
		case <-ticker.C:
		}
	}
}

// runCycle один проход по всем символам. Паника внутри цикла не роняет процесс.
func (r *Runner) runCycle(ctx context.Context) {
	started := r.now()
	defer func() {
		if p := recover(); p != nil {
			logger.Error("[RUNNER] cycle panic: %v", p)
			r.metrics.RecordError(string(kindUnknown))
		}
		r.metrics.ObserveCycle(r.now().Sub(started))
		r.state.TouchCycle(r.now())
	}()

	for _, symbol := range r.symbols {
		if ctx.Err() != nil {
			return
		}
		if err := r.evaluate(ctx, symbol); err != nil {
			r.report(ctx, symbol, err)
		}
	}
}

func (r *Runner) evaluate(ctx context.Context, symbol string) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "runner.evaluate")
	span.SetTag("symbol", symbol)
	defer func() {
		if err != nil {
			ext.Error.Set(span, true)
			span.LogKV("error", err.Error())
		}
		span.Finish()
	}()

	logger.Info("[CHECK] %s", symbol)

	since := r.now().Add(-r.lookback)
	htf, err := r.source.Candles(ctx, symbol, r.htf, since)
	if err != nil {
		return fmt.Errorf("fetch %s %s: %w", symbol, r.htf, err)
	}
	ltf, err := r.source.Candles(ctx, symbol, r.ltf, since)
	if err != nil {
		return fmt.Errorf("fetch %s %s: %w", symbol, r.ltf, err)
	}

	sig, err := r.checker.Check(htf, ltf)
	if err != nil {
		return fmt.Errorf("check %s: %w", symbol, err)
	}
	if sig == nil || !r.last.changed(symbol, *sig) {
		logger.Info("[CHECK] %s no signal or unchanged", symbol)
		return nil
	}

	logger.Info("[SIGNAL] %s %s @ %v sl=%v tp=%v", symbol, sig.Type, sig.EntryPrice, sig.SL, sig.TP)
	span.SetTag("signal", string(sig.Type))

	if err := r.notifier.Notify(ctx, symbol, *sig); err != nil {
		if errors.Is(err, notify.ErrMissingChatID) {
			return err
		}
		return &notifyError{err: err}
	}

	// кэш обновляется только после доставки, иначе сигнал повторится в следующем цикле
	r.last.store(symbol, *sig)
	r.metrics.RecordSignal(symbol, string(sig.Type))
	r.state.AddSignal()

	if err := r.journal.Record(ctx, symbol, *sig); err != nil {
		logger.Warn("[JOURNAL] %s: %v", symbol, err)
	}
	return nil
}

func (r *Runner) report(ctx context.Context, symbol string, err error) {
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return
	}

	k := classify(err)
	r.metrics.RecordError(string(k))

	switch k {
	case kindNoData:
		logger.Warn("[SKIP] %s no data: %v", symbol, err)
	case kindTransport:
		logger.Warn("[TRANSPORT] %s: %v", symbol, err)
	default:
		logger.Errorw("evaluate failed",
			zap.String("kind", string(k)),
			zap.String("symbol", symbol),
			zap.Error(err),
		)
	}
}
