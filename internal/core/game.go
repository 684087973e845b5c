package core

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agenthands/kamsam/internal/core/dedupe"
	"github.com/agenthands/kamsam/internal/core/history"
	"github.com/agenthands/kamsam/internal/core/model"
	"github.com/agenthands/kamsam/internal/core/palette"
	"github.com/agenthands/kamsam/internal/core/segment"
)

// Game owns one round of entered words, the matching policy and the history
// of closed rounds.
//
// It is the Idle / PendingResolution state machine: a submission that
// duplicates an earlier entry is still appended, and the game then refuses
// further submissions until the caller resolves it by removing the last entry
// or by closing the round. Every operation either completes or fails without
// changing anything.
//
// A Game is not safe for concurrent use; callers serialize access.
type Game struct {
	Detector *dedupe.Detector
	Colors   palette.Picker
	Logger   *zap.Logger

	policy  model.Policy
	round   []model.Entry
	pending *model.Duplicate
	history *history.Log

	newID func() string
	now   func() time.Time
}

type Option func(*Game)

func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		g.Logger = logger
	}
}

func WithPicker(p palette.Picker) Option {
	return func(g *Game) {
		g.Colors = p
	}
}

func WithPolicy(p model.Policy) Option {
	return func(g *Game) {
		g.policy = p
	}
}

func WithHistoryLimit(limit int) Option {
	return func(g *Game) {
		g.history = history.NewLog(limit)
	}
}

// WithIDGenerator replaces uuid-based identifiers.
func WithIDGenerator(fn func() string) Option {
	return func(g *Game) {
		g.newID = fn
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// NewGame returns an idle game with an empty round in exact mode.
func NewGame(seg segment.Segmenter, opts ...Option) *Game {
	g := &Game{
		Detector: dedupe.NewDetector(seg),
		Logger:   zap.NewNop(),
		policy:   model.PolicyExact,
		history:  history.NewLog(history.DefaultLimit),
		newID:    uuid.NewString,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.Colors == nil {
		p, _ := palette.New(palette.Default())
		g.Colors = p
	}
	if !g.policy.Valid() {
		g.policy = model.PolicyExact
	}
	return g
}

// Submit appends word to the round and checks it against the entries that
// were there before. Surrounding whitespace is trimmed first.
func (g *Game) Submit(word string) (model.SubmitResult, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		g.Logger.Warn("Rejected empty submission")
		return model.SubmitResult{}, fmt.Errorf("%w: word is empty", ErrInvalidInput)
	}
	if g.pending != nil {
		g.Logger.Warn("Rejected submission while duplicate is pending",
			zap.String("word", word),
			zap.String("pending", g.pending.Word))
		return model.SubmitResult{}, fmt.Errorf("%w: duplicate %q awaits resolution", ErrInvalidState, g.pending.Word)
	}

	positions, err := g.Detector.FindDuplicates(g.policy, word, g.round)
	if err != nil {
		return model.SubmitResult{}, fmt.Errorf("failed to check duplicates: %w", err)
	}

	entry := model.Entry{
		ID:    g.newID(),
		Text:  word,
		Color: g.Colors.Pick(),
	}
	g.round = append(g.round, entry)

	if len(positions) == 0 {
		g.Logger.Debug("Accepted word",
			zap.String("word", word),
			zap.Int("position", len(g.round)))
		return model.SubmitResult{Outcome: model.OutcomeAccepted, Entry: entry}, nil
	}

	g.pending = &model.Duplicate{Word: word, Positions: positions}
	g.Logger.Info("Duplicate flagged",
		zap.String("word", word),
		zap.String("policy", string(g.policy)),
		zap.Ints("positions", positions))

	return model.SubmitResult{
		Outcome:   model.OutcomeDuplicate,
		Entry:     entry,
		Word:      word,
		Positions: slices.Clone(positions),
	}, nil
}

// ResolveByRemoving drops the duplicate that was just appended and resumes the round.
func (g *Game) ResolveByRemoving() error {
	if g.pending == nil {
		return fmt.Errorf("%w: no duplicate to remove", ErrInvalidState)
	}

	removed := g.round[len(g.round)-1]
	g.round = g.round[:len(g.round)-1]
	g.pending = nil

	g.Logger.Debug("Removed duplicate", zap.String("word", removed.Text))
	return nil
}

// ResolveByClosing ends the round. The first earlier entry with the same text
// and the final entry are highlighted and share the first one's color, then
// the round becomes the newest history record and a new round starts.
//
// When no earlier entry has exactly the same text, which happens in partial
// mode, every flagged position is highlighted instead and the final entry
// takes the color of the first flagged one.
func (g *Game) ResolveByClosing() (model.HistoryRecord, error) {
	if g.pending == nil {
		return model.HistoryRecord{}, fmt.Errorf("%w: no duplicate to close the round on", ErrInvalidState)
	}

	entries := slices.Clone(g.round)
	last := len(entries) - 1

	if first := dedupe.FirstExact(g.pending.Word, entries[:last]); first >= 0 {
		entries[first].Highlighted = true
		entries[last].Color = entries[first].Color
	} else {
		for _, pos := range g.pending.Positions {
			entries[pos-1].Highlighted = true
		}
		entries[last].Color = entries[g.pending.Positions[0]-1].Color
	}
	entries[last].Highlighted = true

	rec := model.HistoryRecord{
		ID:       g.newID(),
		Entries:  entries,
		ClosedAt: g.now(),
	}
	evicted := g.history.Prepend(rec)

	g.Logger.Info("Round closed",
		zap.String("record", rec.ID),
		zap.String("word", g.pending.Word),
		zap.Int("entries", len(entries)),
		zap.Int("evicted", evicted))

	g.round = nil
	g.pending = nil
	return rec.Clone(), nil
}

// SetPolicy changes matching for later submissions. Existing entries are not re-evaluated.
func (g *Game) SetPolicy(p model.Policy) error {
	if !p.Valid() {
		return fmt.Errorf("%w: unknown policy %q", ErrInvalidInput, p)
	}
	if g.pending != nil {
		return fmt.Errorf("%w: cannot change policy while a duplicate is pending", ErrInvalidState)
	}
	if p != g.policy {
		g.Logger.Info("Policy changed",
			zap.String("from", string(g.policy)),
			zap.String("to", string(p)))
	}
	g.policy = p
	return nil
}

func (g *Game) Policy() model.Policy {
	return g.policy
}

func (g *Game) State() model.State {
	if g.pending != nil {
		return model.StatePendingResolution
	}
	return model.StateIdle
}

// Pending returns the duplicate awaiting resolution, if any.
func (g *Game) Pending() (model.Duplicate, bool) {
	if g.pending == nil {
		return model.Duplicate{}, false
	}
	return model.Duplicate{
		Word:      g.pending.Word,
		Positions: slices.Clone(g.pending.Positions),
	}, true
}

// Round returns a copy of the current round in input order.
func (g *Game) Round() []model.Entry {
	return append([]model.Entry{}, g.round...)
}

// History returns a copy of the closed rounds, newest first.
func (g *Game) History() []model.HistoryRecord {
	return g.history.Records()
}

func (g *Game) Snapshot() model.Snapshot {
	s := model.Snapshot{
		Policy:  g.policy,
		State:   g.State(),
		Round:   g.Round(),
		History: g.History(),
	}
	if d, ok := g.Pending(); ok {
		s.Pending = &d
	}
	return s
}
