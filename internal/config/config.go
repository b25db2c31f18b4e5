package config

import (
	"time"

	"nifinova/pkg/config"
)

// MarketData holds upstream market data source configuration. All credentials
// are optional; missing ones select the next source in the fallback chain.
type MarketData struct {
	NSEBaseURL          string `mapstructure:"nse_base_url"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	KiteAPIKey          string `mapstructure:"kite_api_key"`
	KiteAccessToken     string `mapstructure:"kite_access_token"`
	KiteBaseURL         string `mapstructure:"kite_base_url"`
}

// WhatsApp holds WhatsApp Cloud API configuration. When the token or phone
// number ID is empty, sends are logged and reported as mock successes.
type WhatsApp struct {
	AccessToken   string `mapstructure:"access_token"`
	PhoneNumberID string `mapstructure:"phone_number_id"`
	BaseURL       string `mapstructure:"base_url"`
}

// Telegram holds configuration for the optional Telegram broadcast channel.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Gemini holds configuration for AI sentiment analysis.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// Generator holds signal generator configuration.
type Generator struct {
	Interval     time.Duration `mapstructure:"interval"`
	InitialDelay time.Duration `mapstructure:"initial_delay"`
}

// Config holds the full configuration for the dashboard service.
type Config struct {
	App        config.App    `mapstructure:"app"`
	Logger     config.Logger `mapstructure:"logger"`
	API        config.API    `mapstructure:"api"`
	MarketData MarketData    `mapstructure:"market_data"`
	WhatsApp   WhatsApp      `mapstructure:"whatsapp"`
	Telegram   Telegram      `mapstructure:"telegram"`
	Gemini     Gemini        `mapstructure:"gemini"`
	Generator  Generator     `mapstructure:"generator"`
}

// Load loads the dashboard configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.API.Port == 0 {
		c.API.Port = 5000
	}
	if c.MarketData.NSEBaseURL == "" {
		c.MarketData.NSEBaseURL = "https://www.nseindia.com/api"
	}
	if c.MarketData.KiteBaseURL == "" {
		c.MarketData.KiteBaseURL = "https://api.kite.trade"
	}
	if c.MarketData.MaxRequestPerMinute == 0 {
		c.MarketData.MaxRequestPerMinute = 30
	}
	if c.WhatsApp.BaseURL == "" {
		c.WhatsApp.BaseURL = "https://graph.facebook.com/v17.0"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.0-flash"
	}
	if c.Gemini.MaxRequestPerMinute == 0 {
		c.Gemini.MaxRequestPerMinute = 10
	}
	if c.Generator.Interval == 0 {
		c.Generator.Interval = 2 * time.Minute
	}
	if c.Generator.InitialDelay == 0 {
		c.Generator.InitialDelay = 15 * time.Second
	}
}
