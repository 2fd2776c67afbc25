package state

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. NOVONEX_TELEGRAM_BOT_TOKEN.
const EnvPrefix = "novonex"

const (
	StateStoreMemory = "memory"
	StateStoreTTL    = "ttl"
)

type Config struct {
	Path         string `yaml:"-" ignored:"true"`
	TimeZone     string `yaml:"time_zone" split_words:"true"`
	TimeFormat   string `yaml:"time_format" split_words:"true"`
	DebugMode    bool   `yaml:"debug_mode" split_words:"true"`
	SilentDbLogs bool   `yaml:"silent_db_logs" split_words:"true"`

	Telegram struct {
		BotToken           string `yaml:"bot_token" split_words:"true"`
		APIURL             string `yaml:"api_url" envconfig:"API_URL"`
		OwnerID            int64  `yaml:"owner_id" split_words:"true"`
		SkipStartupMessage bool   `yaml:"skip_startup_message" split_words:"true"`
		SkipQrCodeSend     bool   `yaml:"skip_qr_code" envconfig:"SKIP_QR_CODE"`
	} `yaml:"telegram"`

	WhatsApp struct {
		LoginDatabase struct {
			Type string `yaml:"type"`
			URL  string `yaml:"url"`
		} `yaml:"login_database" split_words:"true"`
		SessionName      string   `yaml:"session_name" split_words:"true"`
		BrowserName      string   `yaml:"browser_name" split_words:"true"`
		IgnoreChats      []string `yaml:"ignore_chats" split_words:"true"`
		SendButtons      bool     `yaml:"send_buttons" split_words:"true"`
		SendContactCards bool     `yaml:"send_contact_cards" split_words:"true"`
		RateLimit        struct {
			PerSecond float64 `yaml:"per_second" split_words:"true"`
			Burst     int     `yaml:"burst"`
		} `yaml:"rate_limit" split_words:"true"`
	} `yaml:"whatsapp"`

	StateStore struct {
		Type     string        `yaml:"type"`
		TTL      time.Duration `yaml:"ttl"`
		Capacity uint64        `yaml:"capacity"`
	} `yaml:"state_store" split_words:"true"`

	Database struct {
		Type string `yaml:"type"`
		URL  string `yaml:"url"`
	} `yaml:"database"`

	Metrics struct {
		ListenAddress string `yaml:"listen_address" split_words:"true"`
	} `yaml:"metrics"`
}

func (cfg *Config) LoadConfig() error {
	configFilePath := cfg.Path

	if _, err := os.Stat(configFilePath); err != nil {
		return fmt.Errorf("error with config file path : %w", err)
	}

	configFile, err := os.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("could not open config file : %w", err)
	}
	defer configFile.Close()

	configBody, err := io.ReadAll(configFile)
	if err != nil {
		return fmt.Errorf("could not read config file : %w", err)
	}

	err = yaml.Unmarshal(configBody, cfg)
	if err != nil {
		return fmt.Errorf("could not parse config file : %w", err)
	}

	err = envconfig.Process(EnvPrefix, cfg)
	if err != nil {
		return fmt.Errorf("could not apply environment overrides : %w", err)
	}

	return cfg.Validate()
}

func (cfg *Config) SetDefaults() {
	cfg.Path = "config.yaml"
	cfg.TimeZone = "UTC"
	cfg.TimeFormat = "02 Jan 2006 15:04:05"

	cfg.WhatsApp.SessionName = "novonex-bot"
	cfg.WhatsApp.BrowserName = "CHROME"
	cfg.WhatsApp.LoginDatabase.Type = "sqlite3"
	cfg.WhatsApp.LoginDatabase.URL = "file:novonex_wasession.db?_foreign_keys=on"
	cfg.WhatsApp.SendButtons = true

	cfg.StateStore.Type = StateStoreMemory
	cfg.StateStore.TTL = 24 * time.Hour

	cfg.Database.Type = "sqlite"
	cfg.Database.URL = "novonex.db"

	cfg.Telegram.APIURL = gotgbot.DefaultAPIURL
}

func (cfg *Config) Validate() error {
	switch cfg.StateStore.Type {
	case StateStoreMemory:
	case StateStoreTTL:
		if cfg.StateStore.TTL <= 0 {
			return fmt.Errorf("state_store.ttl must be positive, got %s", cfg.StateStore.TTL)
		}
	default:
		return fmt.Errorf("unknown state_store.type %q", cfg.StateStore.Type)
	}

	switch cfg.WhatsApp.LoginDatabase.Type {
	case "sqlite3", "postgres":
	default:
		return fmt.Errorf("unsupported whatsapp.login_database.type %q", cfg.WhatsApp.LoginDatabase.Type)
	}

	if cfg.Telegram.BotToken != "" && cfg.Telegram.OwnerID == 0 {
		return fmt.Errorf("telegram.owner_id is required when telegram.bot_token is set")
	}

	return nil
}

// TelegramEnabled reports whether the owner console should be started.
func (cfg *Config) TelegramEnabled() bool {
	return cfg.Telegram.BotToken != ""
}
