package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testYAML = `server:
  address: 127.0.0.1
  port: 9090

database:
  path: data/test.db

session:
  secret: from-file
  expire_hours: 48

chat:
  model: llama3-8b-8192
`

// Load is guarded by a sync.Once, so a single test exercises file
// values, defaults and environment overrides together.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(testYAML), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	// nested keys map to FT_<SECTION>_<KEY>
	t.Setenv("FT_SESSION_SECRET", "from-env")
	t.Setenv("GROQ_API_KEY", "sk-test")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Path != "data/test.db" {
		t.Errorf("Database.Path = %q, want data/test.db", cfg.Database.Path)
	}

	// the environment must beat the file for the session secret
	if cfg.Session.Secret != "from-env" {
		t.Errorf("Session.Secret = %q, want env override from-env", cfg.Session.Secret)
	}
	if cfg.Session.TTL() != 48*time.Hour {
		t.Errorf("Session.TTL() = %s, want 48h", cfg.Session.TTL())
	}

	// the chat key is bound to GROQ_API_KEY, never read from the file
	if cfg.Chat.APIKey != "sk-test" {
		t.Errorf("Chat.APIKey = %q, want sk-test", cfg.Chat.APIKey)
	}

	// unset keys fall back to defaults
	if cfg.Session.CookieName != "ft_session" {
		t.Errorf("Session.CookieName = %q, want default ft_session", cfg.Session.CookieName)
	}
	if cfg.Chat.Timeout() != 15*time.Second {
		t.Errorf("Chat.Timeout() = %s, want default 15s", cfg.Chat.Timeout())
	}

	if Get() != cfg {
		t.Error("Get() did not return the loaded config")
	}
}
