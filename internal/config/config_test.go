package config

import (
	"os"
	"testing"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/patientd_test")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Error("expected default env to be development")
	}
	if cfg.SourceLanguage != "en" {
		t.Errorf("expected default source language en, got %s", cfg.SourceLanguage)
	}
	if cfg.TranslatorTimeout != 30 {
		t.Errorf("expected default translator timeout 30, got %d", cfg.TranslatorTimeout)
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	os.Unsetenv("DATABASE_URL")
	if _, err := Load(); err == nil {
		t.Error("expected error when DATABASE_URL is unset")
	}
}

func TestLoad_CORSOriginsSplit(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CORS_ORIGINS", "http://a.example,http://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %d: %v", len(cfg.CORSOrigins), cfg.CORSOrigins)
	}
	if cfg.CORSOrigins[1] != "http://b.example" {
		t.Errorf("unexpected second origin: %s", cfg.CORSOrigins[1])
	}
}

func TestValidate_ProductionRequiresAccessKey(t *testing.T) {
	cfg := &Config{
		Env:               "production",
		TranslatorURL:     "https://translate.example",
		SourceLanguage:    "en",
		TranslatorTimeout: 30,
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for production without API_ACCESS_KEY")
	}

	cfg.APIAccessKey = "secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_ProductionRequiresTranslatorURL(t *testing.T) {
	cfg := &Config{
		Env:               "production",
		APIAccessKey:      "secret",
		SourceLanguage:    "en",
		TranslatorTimeout: 30,
	}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for production without TRANSLATOR_URL")
	}
}

func TestValidate_DevelopmentAllowsEmptyKey(t *testing.T) {
	cfg := &Config{Env: "development", SourceLanguage: "en", TranslatorTimeout: 30}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
