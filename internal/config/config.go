package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	ViewAdmin = "admin"
	ViewGuest = "guest"
)

type Config struct {
	ListenAddr   string `mapstructure:"LISTEN_ADDR" validate:"required"`
	DatabasePath string `mapstructure:"DB_PATH" validate:"required"`
	QRDir        string `mapstructure:"QR_DIR" validate:"required"`
	PDFDir       string `mapstructure:"PDF_DIR" validate:"required"`
	BaseURL      string `mapstructure:"BASE_URL" validate:"required,url"`
	ViewMode     string `mapstructure:"VIEW_MODE" validate:"oneof=admin guest"`
	EventTitle   string `mapstructure:"EVENT_TITLE" validate:"required"`
	LogDir       string `mapstructure:"LOG_DIR" validate:"required"`
	LogConsole   bool   `mapstructure:"LOG_CONSOLE"`
}

// IsAdmin reports whether the panel exposes the guest list and removal.
func (c *Config) IsAdmin() bool {
	return c.ViewMode == ViewAdmin
}

// ValidationURL builds the link encoded into a guest's QR code.
func (c *Config) ValidationURL(id string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/validar/" + id
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetDefault("LISTEN_ADDR", ":8080")
	v.SetDefault("DB_PATH", "invitados.db")
	v.SetDefault("QR_DIR", "qrs")
	v.SetDefault("PDF_DIR", "pdfs")
	v.SetDefault("BASE_URL", "https://qr-fiesta.onrender.com")
	v.SetDefault("VIEW_MODE", ViewAdmin)
	v.SetDefault("EVENT_TITLE", "Invitación a la fiesta")
	v.SetDefault("LOG_DIR", "logs")
	v.SetDefault("LOG_CONSOLE", true)

	v.SetEnvPrefix("FIESTA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetConfigFile(".env")
	// .env is optional
	_ = v.ReadInConfig()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
