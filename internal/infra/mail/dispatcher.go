package mail

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"go.uber.org/fx"
)

// Dispatcher renders and sends mail on background goroutines so callers never
// wait on SMTP. Shutdown waits for in-flight sends.
type Dispatcher struct {
	mailer   service.Mailer
	renderer *renderer
	timeout  time.Duration
	logger   *slog.Logger
	wg       sync.WaitGroup
}

// DispatcherParams holds dependencies for the dispatcher, injected by Fx
type DispatcherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Mailer service.Mailer
	Config *config.Config
	Logger *slog.Logger
}

// NewDispatcher creates the dispatcher and drains it on stop.
func NewDispatcher(params DispatcherParams) (service.MailDispatcher, error) {
	dispatcher, err := newDispatcher(params.Mailer, params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			dispatcher.Wait(ctx)

			return nil
		},
	})

	return dispatcher, nil
}

func newDispatcher(mailer service.Mailer, cfg *config.Config, logger *slog.Logger) (*Dispatcher, error) {
	templates, err := newRenderer()
	if err != nil {
		return nil, err
	}

	timeout := defaultSMTPTimeout
	if cfg.Mail != nil && cfg.Mail.Timeout > 0 {
		timeout = cfg.Mail.Timeout
	}

	return &Dispatcher{
		mailer:   mailer,
		renderer: templates,
		timeout:  timeout,
		logger:   logger,
	}, nil
}

// Dispatch queues msg. Render and send failures are logged.
func (d *Dispatcher) Dispatch(msg service.MailMessage) {
	if msg.To == "" {
		return
	}

	subject, body, err := d.renderer.Render(msg)
	if err != nil {
		d.logger.Error("Failed to render mail",
			slog.String("template", string(msg.Template)),
			slog.Any("error", err))

		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.mailer.Send(ctx, msg.To, subject, body); err != nil {
			d.logger.Error("Failed to send mail",
				slog.String("template", string(msg.Template)),
				slog.String("to", msg.To),
				slog.Any("error", err))

			return
		}

		d.logger.Info("Mail sent",
			slog.String("template", string(msg.Template)),
			slog.String("to", msg.To))
	}()
}

// Wait blocks until every dispatched mail finished or ctx is done.
func (d *Dispatcher) Wait(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		d.logger.Warn("Shutdown while mail was still in flight")
	}
}
