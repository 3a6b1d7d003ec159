package extraction

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"mediaprobe/internal/config"
	"mediaprobe/internal/dispatch"
	"mediaprobe/internal/logging"
	"mediaprobe/internal/media"
	"mediaprobe/internal/services"
)

const component = "extraction"

// Option configures the adapter.
type Option func(*Adapter)

// WithEngine injects a custom engine (primarily for tests).
func WithEngine(engine Engine) Option {
	return func(a *Adapter) {
		if engine != nil {
			a.engine = engine
		}
	}
}

// WithPool runs extractions on a caller-owned pool. The adapter will not close it.
func WithPool(pool *dispatch.Pool) Option {
	return func(a *Adapter) {
		if pool != nil {
			a.pool = pool
			a.ownsPool = false
		}
	}
}

// WithLogger sets the adapter logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// Adapter turns a URL into a canonical media.Info using the configured engine.
type Adapter struct {
	engine   Engine
	pool     *dispatch.Pool
	ownsPool bool
	timeout  time.Duration
	logger   *slog.Logger
}

// NewAdapter constructs an adapter from configuration.
func NewAdapter(cfg *config.Config, opts ...Option) *Adapter {
	a := &Adapter{
		engine:   NewYTDLPEngine(cfg.Extractor),
		pool:     dispatch.NewPool(cfg.Extractor.Workers),
		ownsPool: true,
		timeout:  cfg.ExtractionTimeout(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = logging.NewComponentLogger(a.logger, component)
	return a
}

// Workers reports how many extractions may run at once.
func (a *Adapter) Workers() int {
	return a.pool.Size()
}

// Close waits for in-flight extractions and releases the adapter's pool.
func (a *Adapter) Close() {
	if a.ownsPool {
		a.pool.Close()
	}
}

// Extract runs the engine for url and normalizes the result. Failures carry one
// of the services markers: ErrTimeout, ErrUnsupportedSource, ErrInvalidURL or
// ErrExtractionFailed.
func (a *Adapter) Extract(ctx context.Context, url string) (*media.Info, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}
	logger := logging.WithContext(ctx, a.logger)
	started := time.Now()

	task, err := dispatch.Submit(ctx, a.pool, func(ctx context.Context) (Result, error) {
		return a.engine.Run(ctx, url)
	})
	if err != nil {
		return nil, services.Wrap(services.ErrExtractionFailed, component, "dispatch", "schedule extraction", err)
	}

	res, err := task.Await(ctx)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = context.DeadlineExceeded
		}
		classified := Classify(err, res.Stderr)
		logger.Debug("extraction failed",
			logging.String("url", url),
			logging.Duration("elapsed", time.Since(started)),
			logging.String(logging.FieldErrorToken, services.ErrorToken(classified)),
			logging.Error(err),
		)
		return nil, classified
	}

	raw, err := ParseRaw(res.Stdout)
	if err != nil {
		return nil, err
	}
	info, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	logger.Debug("extraction complete",
		logging.String("url", url),
		logging.Duration("elapsed", time.Since(started)),
		logging.Int("formats", len(info.Formats)),
	)
	return info, nil
}
