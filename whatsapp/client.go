package whatsapp

import (
	"context"
	"fmt"
	"os"
	"strings"

	"novonexbot/state"
	"novonexbot/utils"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mdp/qrterminal/v3"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waCompanionReg"
	"go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
)

// NewWhatsAppClient opens the login database and prepares the client for the
// first stored device. It does not connect.
func NewWhatsAppClient(ctx context.Context) (*whatsmeow.Client, error) {
	var (
		cfg    = state.State.Config
		logger = state.State.Logger
	)

	waLogger := NewWaLogger(logger.Named("whatsmeow"))

	container, err := sqlstore.New(ctx,
		cfg.WhatsApp.LoginDatabase.Type,
		cfg.WhatsApp.LoginDatabase.URL,
		waLogger.Sub("Database"),
	)
	if err != nil {
		return nil, fmt.Errorf("could not open whatsapp login database: %w", err)
	}

	deviceStore, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load whatsapp device: %w", err)
	}

	store.DeviceProps.Os = proto.String(cfg.WhatsApp.SessionName)
	if platform, found := waCompanionReg.DeviceProps_PlatformType_value[strings.ToUpper(cfg.WhatsApp.BrowserName)]; found {
		store.DeviceProps.PlatformType = waCompanionReg.DeviceProps_PlatformType(platform).Enum()
	} else {
		logger.Warn("unknown browser name, keeping whatsmeow default",
			zap.String("browser_name", cfg.WhatsApp.BrowserName),
		)
	}

	client := whatsmeow.NewClient(deviceStore, waLogger.Sub("Client"))
	state.State.WhatsAppClient = client

	return client, nil
}

// Connect logs in with a QR code when no session is stored yet, then
// connects.
func Connect(ctx context.Context, client *whatsmeow.Client) error {
	logger := state.State.Logger
	defer logger.Sync()

	if client.Store.ID != nil {
		return client.Connect()
	}

	qrChan, err := client.GetQRChannel(ctx)
	if err != nil {
		return fmt.Errorf("could not get qr channel: %w", err)
	}

	if err = client.Connect(); err != nil {
		return err
	}

	for evt := range qrChan {
		switch evt.Event {
		case whatsmeow.QRChannelEventCode:
			fmt.Println("Scan the QR code below from WhatsApp > Linked Devices:")
			qrterminal.GenerateHalfBlock(evt.Code, qrterminal.L, os.Stdout)

			if err := utils.TgSendQRCodeToOwner(evt.Code); err != nil {
				logger.Error("failed to send qr code to telegram", zap.Error(err))
			}
		case whatsmeow.QRChannelSuccess.Event:
			logger.Info("whatsapp login successful")
			return nil
		default:
			if evt.Error != nil {
				return fmt.Errorf("whatsapp login failed: %w", evt.Error)
			}
			return fmt.Errorf("whatsapp login failed: %s", evt.Event)
		}
	}

	return nil
}
