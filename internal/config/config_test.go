package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_CONFIG_PATH", "")
	t.Setenv("PORT", "8080")
	t.Setenv("MP_ACCESS_TOKEN", "mp-token")
	t.Setenv("APPS_SCRIPT_URL", "https://script.google.com/exec")
	t.Setenv("FB_PIXEL_ID", "pixel-1")
	t.Setenv("FB_ACCESS_TOKEN", "fb-token")
	t.Setenv("WEBHOOK_URL", "https://hooks.example.com/pix")
	t.Setenv("CHARGES_TABLE", "charges_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.MercadoPago.AccessToken != "mp-token" {
		t.Errorf("MercadoPago.AccessToken = %q", cfg.MercadoPago.AccessToken)
	}
	if cfg.LeadSink.AppsScriptURL != "https://script.google.com/exec" {
		t.Errorf("LeadSink.AppsScriptURL = %q", cfg.LeadSink.AppsScriptURL)
	}
	if cfg.Facebook.PixelID != "pixel-1" || cfg.Facebook.AccessToken != "fb-token" {
		t.Errorf("Facebook = %+v", cfg.Facebook)
	}
	if cfg.Facebook.APIVersion != "v18.0" {
		t.Errorf("Facebook.APIVersion = %q, want default v18.0", cfg.Facebook.APIVersion)
	}
	if cfg.Webhook.URL != "https://hooks.example.com/pix" {
		t.Errorf("Webhook.URL = %q", cfg.Webhook.URL)
	}
	if cfg.Storage.ChargesTable != "charges_test" {
		t.Errorf("Storage.ChargesTable = %q", cfg.Storage.ChargesTable)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_CONFIG_PATH", "")
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")
	t.Setenv("CHARGES_TABLE", "")
	os.Unsetenv("CHARGES_TABLE")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 4000 {
		t.Errorf("Port = %d, want default 4000", cfg.Port)
	}
	if cfg.Storage.ChargesTable != "pix_charges" {
		t.Errorf("Storage.ChargesTable = %q, want default pix_charges", cfg.Storage.ChargesTable)
	}
}

func TestLoad_FromYAMLFile(t *testing.T) {
	yaml := `
port: 5000
mercadopago:
  access_token: file-token
plan_links:
  "Plano Starter": "https://pay.example.com/starter"
  "Plano Pro": "https://pay.example.com/pro"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("APP_CONFIG_PATH", path)
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")
	t.Setenv("MP_ACCESS_TOKEN", "")
	os.Unsetenv("MP_ACCESS_TOKEN")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 5000 {
		t.Errorf("Port = %d, want 5000", cfg.Port)
	}
	if cfg.MercadoPago.AccessToken != "file-token" {
		t.Errorf("MercadoPago.AccessToken = %q", cfg.MercadoPago.AccessToken)
	}
	if got := cfg.FulfillmentLink("Plano Starter"); got != "https://pay.example.com/starter" {
		t.Errorf("FulfillmentLink(Plano Starter) = %q", got)
	}
	if got := cfg.FulfillmentLink("  Plano Pro  "); got != "https://pay.example.com/pro" {
		t.Errorf("FulfillmentLink with surrounding spaces = %q", got)
	}
	if got := cfg.FulfillmentLink("Plano Fantasma"); got != "" {
		t.Errorf("FulfillmentLink for unknown plan = %q, want empty", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("APP_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
