package wire

import (
	"context"
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mithrel/profilemd/internal/store"
	"github.com/mithrel/profilemd/pkg/models"
)

// App aggregates the configuration and logger shared by commands.
type App struct {
	Cfg *viper.Viper
	Log *zap.Logger
}

// BuildApp wires dependencies with the provided config.
func BuildApp(ctx context.Context, v *viper.Viper) (*App, error) {
	logger, err := NewLogger(v)
	if err != nil {
		return nil, err
	}
	return &App{Cfg: v, Log: logger}, nil
}

// NewLogger builds a zap logger from log.level and log.development.
func NewLogger(v *viper.Viper) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	var cfg zap.Config
	if v.GetBool("log.development") {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// NewSession starts an editing session. seed may be empty, in which case the
// session starts from models.Default() with configured language and username.
func (a *App) NewSession(seed string) (*store.Store, error) {
	p := models.Default()
	if seed != "" {
		loaded, err := store.Load(seed)
		if err != nil {
			return nil, err
		}
		a.Log.Debug("loaded seed profile", zap.String("path", seed), zap.String("hash", loaded.Hash()))
		return store.New(loaded), nil
	}
	if lang := a.Cfg.GetString("language"); lang != "" {
		p.Language = models.Locale(lang)
	}
	p.Username = a.Cfg.GetString("username")
	return store.New(p), nil
}

// Mute swaps the logger for a no-op until the returned func is called.
// Used while a full-screen program owns the terminal.
func (a *App) Mute() func() {
	prev := a.Log
	a.Log = zap.NewNop()
	return func() { a.Log = prev }
}
