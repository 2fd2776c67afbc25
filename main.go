package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"novonexbot/database"
	"novonexbot/metrics"
	"novonexbot/session"
	"novonexbot/state"
	"novonexbot/telegram"
	"novonexbot/utils"
	"novonexbot/whatsapp"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"go.uber.org/zap"
)

func main() {
	// Load configuration file
	cfg := state.State.Config
	cfg.SetDefaults()

	if len(os.Args) > 1 {
		cfg.Path = os.Args[1]
	}

	err := cfg.LoadConfig()
	if err != nil {
		panic(fmt.Errorf("failed to load config file: %s", err))
	}

	if cfg.DebugMode {
		developmentConfig := zap.NewDevelopmentConfig()
		developmentConfig.OutputPaths = append(developmentConfig.OutputPaths, "debug.log")
		state.State.Logger, err = developmentConfig.Build()
		if err != nil {
			panic(fmt.Errorf("failed to initialize development logger: %s", err))
		}
		state.State.Logger = state.State.Logger.Named("NovoNexBot_Dev")
	} else {
		productionConfig := zap.NewProductionConfig()
		state.State.Logger, err = productionConfig.Build()
		if err != nil {
			panic(fmt.Errorf("failed to initialize production logger: %s", err))
		}
		state.State.Logger = state.State.Logger.Named("NovoNexBot")
	}
	logger := state.State.Logger
	defer logger.Sync()

	logger.Debug("loaded config file and started logger",
		zap.String("config_path", cfg.Path),
		zap.Bool("development_mode", cfg.DebugMode),
	)

	// Create local location for time
	locLoc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		logger.Fatal("failed to set time zone",
			zap.String("time_zone", cfg.TimeZone),
			zap.Error(err),
		)
	}
	state.State.LocalLocation = locLoc

	// Setup database
	db, err := database.Connect()
	if err != nil {
		logger.Fatal("could not connect to database",
			zap.Error(err),
		)
	}

	state.State.Database = db
	err = database.AutoMigrate()
	if err != nil {
		logger.Fatal("could not migrate database tables",
			zap.Error(err),
		)
	}

	// Conversation state
	switch cfg.StateStore.Type {
	case state.StateStoreTTL:
		ttlStore := session.NewTTLStore(cfg.StateStore.TTL, cfg.StateStore.Capacity)
		defer ttlStore.Stop()
		state.State.Sessions = ttlStore
	default:
		state.State.Sessions = session.NewMemoryStore()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TelegramEnabled() {
		err = telegram.NewTelegramClient()
		if err != nil {
			logger.Fatal("failed to initialize telegram client",
				zap.Error(err),
			)
		}
		telegram.AddTelegramHandlers()

		err = utils.TgRegisterBotCommands(state.State.TelegramBot, state.State.TelegramCommands...)
		if err != nil {
			logger.Error("failed to set my commands",
				zap.Error(err),
			)
		}
	} else {
		logger.Info("telegram bot token not set, owner console disabled")
	}

	if cfg.Metrics.ListenAddress != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.ListenAddress, logger); err != nil {
				logger.Error("metrics server stopped",
					zap.Error(err),
				)
			}
		}()
	}

	client, err := whatsapp.NewWhatsAppClient(ctx)
	if err != nil {
		logger.Fatal("failed to initialize whatsapp client",
			zap.Error(err),
		)
	}

	responder := whatsapp.NewResponder(
		state.State.Sessions,
		&whatsapp.ClientSender{Client: client, SendButtons: cfg.WhatsApp.SendButtons},
		whatsapp.DatabaseRecorder{},
		logger.Named("responder"),
	)
	responder.Limiter = utils.NewMapLimiter(cfg.WhatsApp.RateLimit.PerSecond, cfg.WhatsApp.RateLimit.Burst, 0)
	responder.IgnoreChats = cfg.WhatsApp.IgnoreChats
	responder.SendContactCards = cfg.WhatsApp.SendContactCards

	client.AddEventHandler(whatsapp.WhatsAppEventHandler(responder))

	err = whatsapp.Connect(ctx, client)
	if err != nil {
		logger.Fatal("failed to connect to whatsapp",
			zap.Error(err),
		)
	}

	state.State.StartTime = time.Now().UTC()

	if state.State.TelegramBot != nil && !cfg.Telegram.SkipStartupMessage {
		state.State.TelegramBot.SendMessage(cfg.Telegram.OwnerID, "Successfully started NovoNexBot", &gotgbot.SendMessageOpts{})
	}

	<-ctx.Done()
	logger.Info("shutting down")

	client.Disconnect()
	if state.State.TelegramUpdater != nil {
		state.State.TelegramUpdater.Stop()
	}
}
