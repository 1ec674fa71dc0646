package config

import "testing"

func TestResolveDefaults_DerivesDriver(t *testing.T) {
	cfg := &Config{Environment: EnvDevelopment, DBDriver: "auto"}
	if err := cfg.ResolveDefaults(); err != nil {
		t.Fatalf("ResolveDefaults: %v", err)
	}
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("expected sqlite for development, got %s", cfg.DBDriver)
	}

	cfg = &Config{Environment: EnvProduction, DBDriver: "auto", PostgresDSN: "postgres://localhost/moodmate"}
	if err := cfg.ResolveDefaults(); err != nil {
		t.Fatalf("ResolveDefaults: %v", err)
	}
	if cfg.DBDriver != "postgres" {
		t.Fatalf("expected postgres for production, got %s", cfg.DBDriver)
	}
}

func TestResolveDefaults_RejectsUnknownDriver(t *testing.T) {
	cfg := &Config{Environment: EnvDevelopment, DBDriver: "spanner"}
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestResolveDefaults_PostgresRequiresDSN(t *testing.T) {
	cfg := &Config{Environment: EnvProduction, DBDriver: "postgres"}
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatalf("expected error when DSN missing")
	}
}

func TestResolveDefaults_RejectsUnknownEnvironment(t *testing.T) {
	cfg := &Config{Environment: "staging"}
	if err := cfg.ResolveDefaults(); err == nil {
		t.Fatalf("expected error for unknown environment")
	}
}
