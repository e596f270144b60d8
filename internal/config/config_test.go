package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	globalConfig = nil

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("expected default read timeout 15s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected default shutdown timeout 10s, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Analysis.TopKeywords != 15 {
		t.Errorf("expected default top_keywords 15, got %d", cfg.Analysis.TopKeywords)
	}
	if cfg.App.DataDir == "" {
		t.Error("expected a default data directory")
	}
	if !cfg.Server.CORS.Enabled {
		t.Error("expected CORS enabled by default")
	}
}

func TestLoadCachesConfig(t *testing.T) {
	globalConfig = nil

	first, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	second, err := Load("")
	if err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	if first != second {
		t.Error("expected Load to return the cached config")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:   "valid",
			config: Config{Server: Server{Port: 8080}, Analysis: Analysis{TopKeywords: 15}},
		},
		{
			name:    "port too low",
			config:  Config{Server: Server{Port: 0}, Analysis: Analysis{TopKeywords: 15}},
			wantErr: true,
		},
		{
			name:    "port too high",
			config:  Config{Server: Server{Port: 70000}, Analysis: Analysis{TopKeywords: 15}},
			wantErr: true,
		},
		{
			name:    "non-positive top_keywords",
			config:  Config{Server: Server{Port: 8080}, Analysis: Analysis{TopKeywords: 0}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(&tt.config)
			if tt.wantErr && err == nil {
				t.Error("expected a validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
