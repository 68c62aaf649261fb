package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the immutable process configuration, built once at startup and
// handed to every component. Nothing reads the environment after Load.
//
// Values come from the environment (optionally via a .env file loaded in
// main) and, when APP_CONFIG_PATH points at a YAML file, from that file as
// well. The YAML file is the place for the plan→fulfillment-link table,
// which has no sane env-var encoding.

type Config struct {
	Port        int      `yaml:"port" env:"PORT" env-default:"4000"`
	CORSOrigins []string `yaml:"cors_origins" env:"CORS_ORIGINS"`

	MercadoPago MercadoPago `yaml:"mercadopago"`
	LeadSink    LeadSink    `yaml:"lead_sink"`
	Facebook    Facebook    `yaml:"facebook"`
	Webhook     Webhook     `yaml:"webhook"`
	Storage     Storage     `yaml:"storage"`

	// PlanLinks maps a plan name (the charge description) to the
	// fulfillment link returned once the charge is approved.
	PlanLinks map[string]string `yaml:"plan_links"`
}

type MercadoPago struct {
	AccessToken string `yaml:"access_token" env:"MP_ACCESS_TOKEN"`
}

type LeadSink struct {
	AppsScriptURL string `yaml:"apps_script_url" env:"APPS_SCRIPT_URL"`
}

type Facebook struct {
	PixelID     string `yaml:"pixel_id" env:"FB_PIXEL_ID"`
	AccessToken string `yaml:"access_token" env:"FB_ACCESS_TOKEN"`
	APIVersion  string `yaml:"api_version" env:"FB_API_VERSION" env-default:"v18.0"`
}

type Webhook struct {
	URL string `yaml:"url" env:"WEBHOOK_URL"`
}

type Storage struct {
	ChargesTable string `yaml:"charges_table" env:"CHARGES_TABLE" env-default:"pix_charges"`
}

// Load reads the configuration from APP_CONFIG_PATH (when set) plus the
// environment. Env vars win over file values, per cleanenv semantics.
func Load() (*Config, error) {
	var cfg Config

	if path := strings.TrimSpace(os.Getenv("APP_CONFIG_PATH")); path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env config: %w", err)
	}
	return &cfg, nil
}

// FulfillmentLink resolves the delivery link for an approved charge.
// Unknown plans resolve to the empty string, mirroring the frontend
// contract: the field is present but blank.
func (c *Config) FulfillmentLink(plan string) string {
	if c == nil || c.PlanLinks == nil {
		return ""
	}
	return c.PlanLinks[strings.TrimSpace(plan)]
}
