package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/awaisio/rabtah/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.MaxResultLimit, convey.ShouldEqual, 100)
				convey.So(cfg.DefaultFeedLimit, convey.ShouldEqual, 20)
				convey.So(cfg.DefaultRecommendLimit, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("RABTAH_ADDR", ":8080")
			_ = os.Setenv("RABTAH_LOG_LEVEL", "debug")
			_ = os.Setenv("RABTAH_MAX_RESULT_LIMIT", "50")
			_ = os.Setenv("RABTAH_DEFAULT_FEED_LIMIT", "15")
			_ = os.Setenv("RABTAH_DEFAULT_RECOMMEND_LIMIT", "5")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.MaxResultLimit, convey.ShouldEqual, 50)
				convey.So(cfg.DefaultFeedLimit, convey.ShouldEqual, 15)
				convey.So(cfg.DefaultRecommendLimit, convey.ShouldEqual, 5)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			yamlContent := `
addr: ":9191"
log_level: warn
max_result_limit: 200
default_feed_limit: 25
default_recommend_limit: 12
`
			tmpFile := createTempConfigFile(t, yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("RABTAH_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from the YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9191")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.MaxResultLimit, convey.ShouldEqual, 200)
				convey.So(cfg.DefaultFeedLimit, convey.ShouldEqual, 25)
			})
		})

		convey.Convey("When env vars override the YAML file", func() {
			tmpFile := createTempConfigFile(t, "addr: \":9191\"\n")
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("RABTAH_CONFIG", tmpFile)
			_ = os.Setenv("RABTAH_ADDR", ":7070")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then the env var wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
			})
		})

		convey.Convey("When the config is invalid", func() {
			_ = os.Setenv("RABTAH_MAX_RESULT_LIMIT", "0")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then a sentinel kind is reported", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_ = os.Setenv("RABTAH_CONFIG", "/nonexistent/rabtah.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with the load kind", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"RABTAH_CONFIG",
		"RABTAH_ADDR",
		"RABTAH_LOG_LEVEL",
		"RABTAH_MAX_RESULT_LIMIT",
		"RABTAH_DEFAULT_FEED_LIMIT",
		"RABTAH_DEFAULT_RECOMMEND_LIMIT",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp("", "rabtah-config-*.yaml")
	if err != nil {
		t.Fatalf("create temp config: %v", err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close temp config: %v", err)
	}
	return f.Name()
}
