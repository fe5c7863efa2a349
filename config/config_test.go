package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 || cfg.Database.Driver != DriverSQLite || cfg.Database.DSN != "todo.db" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.DeepSeek.Model != "deepseek-chat" || cfg.DeepSeek.MaxTokens != 500 {
		t.Errorf("unexpected deepseek defaults %+v", cfg.DeepSeek)
	}
	if cfg.Redis.Enabled || !cfg.Seed.SampleData || cfg.RateLimit.AIPerMin != 20 {
		t.Errorf("unexpected toggles %+v %+v %+v", cfg.Redis, cfg.Seed, cfg.RateLimit)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	yaml := `
http_server:
  port: 9090
  cors_origins: "http://a.test, http://b.test"
database:
  driver: POSTGRES
  dsn: "host=db user=todo"
redis:
  enabled: true
  addr: "redis:6379"
extractor:
  timezone: "Asia/Shanghai"
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RATE_LIMIT_AI_PER_MIN", "5")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTPServer.Port != 9090 || len(cfg.HTTPServer.CORSOrigins) != 2 || cfg.HTTPServer.CORSOrigins[1] != "http://b.test" {
		t.Errorf("unexpected server config %+v", cfg.HTTPServer)
	}
	if cfg.Database.Driver != DriverPostgres || !cfg.Redis.Enabled || cfg.Extractor.Timezone != "Asia/Shanghai" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.RateLimit.AIPerMin != 5 {
		t.Errorf("env override ignored: %d", cfg.RateLimit.AIPerMin)
	}
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t, t.TempDir())

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "mysql")
		if _, err := load(viper.New()); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("redis without addr", func(t *testing.T) {
		v := viper.New()
		v.Set("redis.enabled", true)
		v.Set("redis.addr", "")
		if _, err := load(v); err == nil {
			t.Error("expected an error")
		}
	})
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
