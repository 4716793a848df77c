package main

import (
	"ShopBot/internal/adapters/eventbus"
	"ShopBot/internal/adapters/payment"
	"ShopBot/internal/adapters/postgres"
	"ShopBot/internal/adapters/security"
	"ShopBot/internal/adapters/session"
	"ShopBot/internal/adapters/telegram"
	"ShopBot/internal/adapters/tracking"
	"ShopBot/internal/admin"
	"ShopBot/internal/bot/customer"
	"ShopBot/internal/bot/customer/handlers"
	"ShopBot/internal/shared/config"
	"ShopBot/internal/shared/logger"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize Logger
	baseLogger, err := logger.New(cfg.IsDev(), cfg.LogLevel)
	if err != nil {
		fmt.Printf("FATAL: %v\n", err)
		os.Exit(1)
	}
	baseLogger.Info().
		Str("app_env", cfg.AppEnv).
		Str("bot_mode", cfg.Bot.Mode).
		Int("admin_ids", len(cfg.Bot.AdminIDs)).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Security
	secSvc, err := security.NewAESServiceFromHex(cfg.EncryptionKey, &baseLogger)
	if err != nil {
		baseLogger.Fatal().Err(err).Msg("Failed to initialize security service")
	}

	// 4. Database
	db, err := postgres.NewDB(ctx, cfg.Postgres.URL, &baseLogger)
	if err != nil {
		baseLogger.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()
	if err := db.Migrate(ctx); err != nil {
		baseLogger.Fatal().Err(err).Msg("Failed to apply schema")
	}

	// 5. Repositories
	users := postgres.NewUserRepository(db, secSvc, &baseLogger)
	categories := postgres.NewCategoryRepository(db, &baseLogger)
	products := postgres.NewProductRepository(db, &baseLogger)
	orders := postgres.NewOrderRepository(db, &baseLogger)

	// 6. Telegram
	api, err := tgbotapi.NewBotAPI(cfg.Bot.Token)
	if err != nil {
		baseLogger.Fatal().Err(err).Msg("Failed to connect to Telegram")
	}
	baseLogger.Info().Str("username", api.Self.UserName).Msg("Bot API connected")
	client := telegram.NewClient(api, cfg.Bot.SendRate, cfg.Bot.SendBurst, &baseLogger)
	if err := client.SetMenuCommands(ctx); err != nil {
		baseLogger.Warn().Err(err).Msg("Failed to set menu commands")
	}

	// 7. Event bus and hooks
	bus := eventbus.NewInMemoryEventBus(&baseLogger)
	hooks := eventbus.NewHooks(bus)
	notifications := postgres.NewNotificationRepository(db)
	handlers.NewNotificationHandler(client, users, notifications, cfg.Bot.AdminIDs, &baseLogger).Subscribe(bus)

	// 8. Customer bot
	sessions := session.NewMemoryStore()
	deps := &customer.Deps{
		Config:        cfg,
		Log:           &baseLogger,
		Bot:           client,
		Sessions:      sessions,
		Users:         users,
		Categories:    categories,
		Products:      products,
		Cart:          postgres.NewCartRepository(db, &baseLogger),
		Orders:        orders,
		Loyalty:       postgres.NewLoyaltyRepository(db),
		Promos:        postgres.NewPromoRepository(db),
		Notifications: notifications,
		Sellers:       postgres.NewSellerRepository(db),
		Payments:      payment.NewStubProvider(cfg.Payment.CheckoutURL, &baseLogger),
		Tracker:       tracking.NewOrderTracker(orders),
		OrderNotifier: hooks,
		Marketing:     hooks,
	}
	router := customer.NewCustomerRouter(users, sessions, client, &baseLogger)
	customer.RegisterAllHandlers(deps, router, &baseLogger)
	botServer := telegram.NewBotServer(api, router, &cfg.Bot, &baseLogger)

	// 9. Admin panel
	panel, err := admin.NewServer(cfg.Admin, admin.Deps{
		Users:      users,
		Categories: categories,
		Products:   products,
		Orders:     orders,
		Loyalty:    deps.Loyalty,
		Sellers:    deps.Sellers,
		Bus:        bus,
		Hasher:     security.NewPasswordHasher(),
	}, &baseLogger)
	if err != nil {
		baseLogger.Fatal().Err(err).Msg("Failed to initialize admin panel")
	}

	// 10. Run until a signal arrives or a server fails
	baseLogger.Info().Msg("Application started")
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return botServer.Start(gctx) })
	g.Go(func() error { return panel.Start(gctx) })
	if err := g.Wait(); err != nil {
		baseLogger.Error().Err(err).Msg("Server stopped with error")
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := bus.Drain(drainCtx); err != nil {
		baseLogger.Warn().Err(err).Msg("Pending notifications were dropped")
	}
	baseLogger.Info().Msg("Shutdown complete")
}
