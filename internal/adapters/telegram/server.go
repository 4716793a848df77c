package telegram

import (
	"ShopBot/internal/shared/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	shardBuffer   = 64
	updateTimeout = 30 * time.Second
)

// UpdateHandler processes one Telegram update.
type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update *tgbotapi.Update)
}

// BotServer is responsible for running the bot (polling or webhook).
type BotServer struct {
	api     *tgbotapi.BotAPI
	handler UpdateHandler
	cfg     *config.BotConfig
	log     zerolog.Logger
}

// NewBotServer creates a new server instance.
func NewBotServer(
	api *tgbotapi.BotAPI,
	handler UpdateHandler,
	cfg *config.BotConfig,
	baseLogger *zerolog.Logger,
) *BotServer {
	return &BotServer{
		api:     api,
		handler: handler,
		cfg:     cfg,
		log:     baseLogger.With().Str("component", "bot_server").Logger(),
	}
}

// Start runs the bot until ctx is cancelled.
func (s *BotServer) Start(ctx context.Context) error {
	s.log.Info().Str("mode", s.cfg.Mode).Int("workers", s.cfg.Workers).Msg("Starting bot server...")

	switch s.cfg.Mode {
	case "polling":
		return s.startPolling(ctx)
	case "webhook":
		return s.startWebhook(ctx)
	default:
		return fmt.Errorf("unknown bot mode: %s", s.cfg.Mode)
	}
}

func (s *BotServer) startPolling(ctx context.Context) error {
	// 1. Clear any existing webhook
	if _, err := s.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		s.log.Warn().Err(err).Msg("Failed to delete webhook (continuing anyway)")
	}

	// 2. Start workers
	d := newDispatcher(s.cfg.Workers, s.handler, s.log)
	d.start()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := s.api.GetUpdatesChan(u)
	s.log.Info().Msg("Polling update listener started")

	// 3. Main loop
	for {
		select {
		case <-ctx.Done():
			s.api.StopReceivingUpdates()
			d.stop()
			s.log.Info().Msg("Polling stopped gracefully")
			return nil
		case update, ok := <-updates:
			if !ok {
				d.stop()
				return errors.New("telegram update channel closed")
			}
			d.dispatch(update)
		}
	}
}

func (s *BotServer) startWebhook(ctx context.Context) error {
	// 1. Register the webhook with Telegram
	path := "/webhook/" + s.api.Token
	wh, err := tgbotapi.NewWebhook(s.cfg.WebhookURL + path)
	if err != nil {
		return fmt.Errorf("failed to create webhook config: %w", err)
	}
	if _, err := s.api.Request(wh); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	if info, err := s.api.GetWebhookInfo(); err == nil && info.LastErrorDate != 0 {
		s.log.Warn().Str("error_message", info.LastErrorMessage).Msg("Telegram webhook has a last error")
	}

	// 2. Start workers
	d := newDispatcher(s.cfg.Workers, s.handler, s.log)
	d.start()

	// 3. HTTP endpoint; TLS is terminated by the reverse proxy
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.POST(path, webhookHandler(s.api, d, s.log))

	addr := "127.0.0.1:" + s.cfg.WebhookPort
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("Starting HTTP server for webhook")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 4. Wait for shutdown
	select {
	case <-ctx.Done():
	case err := <-errCh:
		d.stop()
		return fmt.Errorf("webhook HTTP server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		s.log.Error().Err(err).Msg("HTTP server shutdown error")
	}
	d.stop()
	s.log.Info().Msg("Webhook server stopped gracefully")
	return nil
}

type updateParser interface {
	HandleUpdate(r *http.Request) (*tgbotapi.Update, error)
}

func webhookHandler(api updateParser, d *dispatcher, log zerolog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		update, err := api.HandleUpdate(c.Request())
		if err != nil {
			log.Warn().Err(err).Msg("Rejected malformed webhook payload")
			return c.NoContent(http.StatusBadRequest)
		}
		d.dispatch(*update)
		return c.NoContent(http.StatusOK)
	}
}

// dispatcher fans updates out to a fixed set of workers. Updates of one user
// always land on the same worker, so they are handled in arrival order.
type dispatcher struct {
	shards  []chan tgbotapi.Update
	handler UpdateHandler
	log     zerolog.Logger
	wg      sync.WaitGroup
	once    sync.Once
}

func newDispatcher(workers int, handler UpdateHandler, log zerolog.Logger) *dispatcher {
	if workers < 1 {
		workers = 1
	}
	shards := make([]chan tgbotapi.Update, workers)
	for i := range shards {
		shards[i] = make(chan tgbotapi.Update, shardBuffer)
	}
	return &dispatcher{shards: shards, handler: handler, log: log}
}

func (d *dispatcher) start() {
	for i, jobs := range d.shards {
		d.wg.Add(1)
		go func(id int, jobs <-chan tgbotapi.Update) {
			defer d.wg.Done()
			for update := range jobs {
				d.handle(update)
			}
			d.log.Debug().Int("worker_id", id).Msg("Worker stopped")
		}(i, jobs)
	}
}

func (d *dispatcher) handle(update tgbotapi.Update) {
	ctx, cancel := context.WithTimeout(context.Background(), updateTimeout)
	defer cancel()
	d.handler.HandleUpdate(ctx, &update)
}

func (d *dispatcher) dispatch(update tgbotapi.Update) {
	d.shards[shardFor(senderID(update), len(d.shards))] <- update
}

// stop closes the queues and waits for in-flight updates to finish.
func (d *dispatcher) stop() {
	d.once.Do(func() {
		for _, jobs := range d.shards {
			close(jobs)
		}
	})
	d.wg.Wait()
}

func shardFor(userID int64, n int) int {
	if userID < 0 {
		userID = -userID
	}
	return int(userID % int64(n))
}

func senderID(update tgbotapi.Update) int64 {
	switch {
	case update.Message != nil && update.Message.From != nil:
		return update.Message.From.ID
	case update.CallbackQuery != nil && update.CallbackQuery.From != nil:
		return update.CallbackQuery.From.ID
	case update.EditedMessage != nil && update.EditedMessage.From != nil:
		return update.EditedMessage.From.ID
	}
	return 0
}
