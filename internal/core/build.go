package core

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/agenthands/kamsam/internal/config"
	"github.com/agenthands/kamsam/internal/core/palette"
	"github.com/agenthands/kamsam/internal/core/segment"
)

// Build wires a Game from configuration: language-specific segmenter behind an
// LRU cache, palette, starting policy and history bound.
func Build(cfg *config.Config, logger *zap.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	tag, _ := cfg.Language()
	policy, _ := cfg.Policy()

	var opts []segment.Option
	if cfg.Segmenter.Dictionary != "" {
		opts = append(opts, segment.WithDictionaryFile(cfg.Segmenter.Dictionary))
	}
	seg, err := segment.New(tag, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create segmenter: %w", err)
	}
	cached, err := segment.NewCached(seg, cfg.Segmenter.CacheSize)
	if err != nil {
		return nil, err
	}

	colors, err := palette.New(cfg.Game.Palette)
	if err != nil {
		return nil, err
	}

	logger.Info("Game configured",
		zap.String("language", tag.String()),
		zap.String("policy", string(policy)),
		zap.Int("history_limit", cfg.Game.HistoryLimit))

	return NewGame(cached,
		WithLogger(logger),
		WithPicker(colors),
		WithPolicy(policy),
		WithHistoryLimit(cfg.Game.HistoryLimit),
	), nil
}
