package actions

import (
	"errors"
	"strings"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/reader"
	"github.com/footprint-tools/brig/internal/suggestion"
	"github.com/footprint-tools/brig/internal/usage"
)

// Selectors accepted wherever a player is expected.
const (
	SelectorAll  = "@a"
	SelectorSelf = "@s"
)

var (
	ErrUnknownSelector = usage.NewDynamic1Type("argument_selector_unknown", usage.CategoryLexical, func(a any) string {
		return "Unknown selector '" + a.(string) + "'"
	})
	ErrExpectedPlayer = usage.NewSimpleType("argument_player_expected", usage.CategoryLexical, "Expected a player name or selector")
	ErrPlayerNotFound = usage.NewDynamic1Type("player_not_found", usage.CategoryCommand, func(a any) string {
		return "No player was found named '" + a.(string) + "'"
	})
	ErrNoPlayers = usage.NewSimpleType("no_players", usage.CategoryCommand, "No players matched")
)

// Target is a parsed player argument: a name or a selector.
type Target struct {
	Raw string
}

func (t Target) IsAll() bool  { return t.Raw == SelectorAll }
func (t Target) IsSelf() bool { return t.Raw == SelectorSelf }

// Single reports whether the target can match at most one player.
func (t Target) Single() bool { return !t.IsAll() }

// PlayerType parses player names and selectors, and suggests stored names.
type PlayerType struct {
	store  domain.WorldStore
	single bool
}

// Players accepts names and every selector.
func Players(store domain.WorldStore) PlayerType {
	return PlayerType{store: store}
}

// Player accepts names and @s only.
func Player(store domain.WorldStore) PlayerType {
	return PlayerType{store: store, single: true}
}

func (p PlayerType) Parse(r *reader.Reader) (any, error) {
	start := r.Cursor()
	token := r.ReadUnquotedString()
	if token == "" {
		return nil, ErrExpectedPlayer.CreateWithContext(r)
	}

	if strings.HasPrefix(token, "@") {
		if token != SelectorSelf && (p.single || token != SelectorAll) {
			r.SetCursor(start)
			return nil, ErrUnknownSelector.CreateWithContext(r, token)
		}
	}

	return Target{Raw: token}, nil
}

func (p PlayerType) ListSuggestions(ctx *dispatchers.Context, b *suggestion.Builder) *suggestion.Suggestions {
	prefix := b.RemainingLowerCase()

	selectors := []string{SelectorSelf}
	if !p.single {
		selectors = append(selectors, SelectorAll)
	}
	for _, sel := range selectors {
		if strings.HasPrefix(sel, prefix) {
			b.Suggest(sel)
		}
	}

	if p.store != nil {
		players, err := p.store.Players()
		if err == nil {
			for _, pl := range players {
				if strings.HasPrefix(strings.ToLower(pl.Name), prefix) {
					b.Suggest(pl.Name)
				}
			}
		}
	}

	return b.Build()
}

func (p PlayerType) Examples() []string {
	if p.single {
		return []string{"alex", SelectorSelf}
	}
	return []string{"alex", SelectorSelf, SelectorAll}
}

func (p PlayerType) String() string {
	if p.single {
		return "player()"
	}
	return "players()"
}

// GetTarget returns the Target stored under name.
func GetTarget(ctx *dispatchers.Context, name string) (Target, error) {
	return dispatchers.ArgumentAs[Target](ctx, name)
}

// ResolvePlayers turns the target argument name into stored players.
func ResolvePlayers(ctx *dispatchers.Context, store domain.WorldStore, name string) ([]domain.Player, error) {
	target, err := GetTarget(ctx, name)
	if err != nil {
		return nil, err
	}

	switch {
	case target.IsAll():
		players, err := store.Players()
		if err != nil {
			return nil, err
		}
		if len(players) == 0 {
			return nil, ErrNoPlayers.Create()
		}
		return players, nil

	case target.IsSelf():
		s, err := SessionFrom(ctx)
		if err != nil {
			return nil, err
		}
		p, ok := s.Player()
		if !ok {
			return nil, ErrNotPlayer.Create()
		}
		// Reload so the caller sees current state.
		return lookup(store, p.Name)

	default:
		return lookup(store, target.Raw)
	}
}

// ResolvePlayer is ResolvePlayers for single-player arguments.
func ResolvePlayer(ctx *dispatchers.Context, store domain.WorldStore, name string) (domain.Player, error) {
	players, err := ResolvePlayers(ctx, store, name)
	if err != nil {
		return domain.Player{}, err
	}
	return players[0], nil
}

func lookup(store domain.WorldStore, name string) ([]domain.Player, error) {
	p, err := store.PlayerByName(name)
	if errors.Is(err, domain.ErrPlayerNotFound) {
		return nil, ErrPlayerNotFound.Create(name)
	}
	if err != nil {
		return nil, err
	}
	return []domain.Player{p}, nil
}
