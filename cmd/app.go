package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/pathwise/internal/guidance"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/market"
	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/ranker"
	"github.com/abhisek/pathwise/internal/roadmap"
	"github.com/abhisek/pathwise/internal/store"
)

// marketCacheSize bounds the LRU of role snapshots held by the CLI process.
const marketCacheSize = 64

// app bundles everything a command needs, wired once per invocation.
type app struct {
	store   *store.Store
	service *guidance.Service
	log     *zap.Logger
}

func (a *app) Close() {
	a.store.Close()
	_ = a.log.Sync()
}

// newApp opens the store and wires the service with the configured LLM
// provider. Without an API key the offline collaborators are used: static
// profile analysis, skill-gap roadmaps and template justifications.
func newApp(cmd *cobra.Command) (*app, error) {
	log, err := newLogger(cmd)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	src, err := marketSource()
	if err != nil {
		s.Close()
		return nil, err
	}

	events := s.EventRepo()
	analyzer, generator, justifier := collaborators(cmd.Context(), events, log)

	rk := ranker.New(src, justifier, log)
	svc := guidance.New(s.JourneyRepo(), events, analyzer, src, generator, rk, log)

	return &app{store: s, service: svc, log: log}, nil
}

// collaborators returns the LLM-backed analyzer, generator and justifier when
// a provider is configured, or the offline fallbacks.
func collaborators(ctx context.Context, sink llm.AuditSink, log *zap.Logger) (profile.Analyzer, roadmap.Generator, ranker.Justifier) {
	cfg := llm.ConfigFromEnv()
	if !configured(cfg) {
		log.Debug("no LLM provider configured, using offline collaborators")
		return &profile.StaticAnalyzer{}, &roadmap.StaticGenerator{}, nil
	}

	provider, err := llm.NewProvider(ctx, cfg, sink, log)
	if err != nil {
		log.Warn("LLM provider init failed, using offline collaborators", zap.Error(err))
		return &profile.StaticAnalyzer{}, &roadmap.StaticGenerator{}, nil
	}

	return profile.NewLLMAnalyzer(provider),
		roadmap.NewLLMGenerator(provider),
		ranker.NewLLMJustifier(provider)
}

func configured(cfg llm.Config) bool {
	switch cfg.Provider {
	case "anthropic":
		return cfg.Anthropic.APIKey != ""
	case "openai":
		return cfg.OpenAI.APIKey != ""
	case "gemini":
		return cfg.Gemini.APIKey != ""
	case "mock":
		return true
	}
	return false
}

// marketSource wraps the bundled dataset in a TTL cache.
func marketSource() (market.Source, error) {
	base, err := market.NewDefaultSource()
	if err != nil {
		return nil, fmt.Errorf("load market dataset: %w", err)
	}
	return market.NewCachedSource(base, marketCacheSize, market.DefaultTTL)
}

func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	return cfg.Build()
}
