package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Bharanieeswaran/RankRite/internal/config"
	"github.com/Bharanieeswaran/RankRite/internal/engine"
	"github.com/Bharanieeswaran/RankRite/internal/history"
	"github.com/Bharanieeswaran/RankRite/internal/logger"
	"github.com/Bharanieeswaran/RankRite/internal/textproc"
)

// loadConfig layers the optional config file, the environment and the
// built-in defaults, then validates the result.
func loadConfig() (config.Config, error) {
	cfg := config.Config{}

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	if err := cfg.FromEnv(); err != nil {
		return config.Config{}, err
	}
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func buildLogger(cfg config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return log, nil
}

func buildPreprocessor(cfg config.Config) (*textproc.Preprocessor, error) {
	opts := []textproc.Option{textproc.WithStemming(!cfg.DisableStemming)}

	if cfg.StopwordsFile != "" {
		raw, err := os.ReadFile(cfg.StopwordsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read stopwords file %s: %w", cfg.StopwordsFile, err)
		}
		opts = append(opts, textproc.WithStopwords(textproc.ParseStopwordList(string(raw))))
	}

	return textproc.New(opts...), nil
}

// buildStore selects the history backend. The returned cleanup releases
// the backend's resources and is safe to call once.
func buildStore(ctx context.Context, cfg config.Config) (history.Store, func(), error) {
	switch cfg.HistoryBackend {
	case config.BackendPostgres:
		store, err := history.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := store.EnsureSchema(ctx); err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
		return store, store.Close, nil
	default:
		return history.NewMemoryStore(), func() {}, nil
	}
}

// buildAnalyzer assembles the full analysis stack from configuration.
func buildAnalyzer(ctx context.Context, cfg config.Config, log *zap.Logger) (*engine.Analyzer, func(), error) {
	preprocessor, err := buildPreprocessor(cfg)
	if err != nil {
		return nil, nil, err
	}

	store, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	analyzer := engine.NewAnalyzer(preprocessor, store, log,
		engine.WithMatchedTermCount(cfg.MatchedTermCount))
	return analyzer, cleanup, nil
}
