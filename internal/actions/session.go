// Package actions holds what every command handler shares: the session
// a line runs as, the player argument type and the dependency set.
package actions

import (
	"fmt"
	"io"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/usage"
)

// Permission tokens checked by RequiresPermission.
const (
	PermissionOp     = "brig.op"
	PermissionConfig = "brig.config"
)

// ConsoleName is the name the console session reports.
const ConsoleName = "Console"

// Session is the dispatch source: who a line runs as and where feedback goes.
type Session struct {
	name    string
	player  *domain.Player
	console bool
	perms   map[string]bool
	out     io.Writer
	styler  domain.Styler
}

// NewConsole returns the console session. It holds every permission.
func NewConsole(out io.Writer, styler domain.Styler) *Session {
	return &Session{name: ConsoleName, console: true, out: out, styler: styler}
}

// NewPlayerSession returns a session acting as p.
// Operators get PermissionOp; nobody but the console gets PermissionConfig.
func NewPlayerSession(p domain.Player, out io.Writer, styler domain.Styler) *Session {
	perms := map[string]bool{}
	if p.Operator {
		perms[PermissionOp] = true
	}
	return &Session{name: p.Name, player: &p, perms: perms, out: out, styler: styler}
}

// As returns a session acting as p that keeps this session's output.
func (s *Session) As(p domain.Player) *Session {
	return NewPlayerSession(p, s.out, s.styler)
}

func (s *Session) Name() string    { return s.name }
func (s *Session) IsConsole() bool { return s.console }

// HasPermission reports whether the session may use token.
func (s *Session) HasPermission(token string) bool {
	return s.console || s.perms[token]
}

// Player returns the acting player, if any.
func (s *Session) Player() (domain.Player, bool) {
	if s.player == nil {
		return domain.Player{}, false
	}
	return *s.player, true
}

// Out returns the feedback writer.
func (s *Session) Out() io.Writer { return s.out }

// Styler returns the feedback styler.
func (s *Session) Styler() domain.Styler { return s.styler }

// Feedback writes one line to the session.
func (s *Session) Feedback(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format+"\n", args...)
}

// Success writes one success-styled line.
func (s *Session) Success(format string, args ...any) {
	_, _ = fmt.Fprintln(s.out, s.styler.Success(fmt.Sprintf(format, args...)))
}

// SessionFrom extracts the *Session a command runs as.
func SessionFrom(ctx *dispatchers.Context) (*Session, error) {
	s, ok := ctx.Source().(*Session)
	if !ok {
		return nil, fmt.Errorf("actions: source %T is not a session", ctx.Source())
	}
	return s, nil
}

// ErrNotPlayer is returned by commands that need a player when the console runs them.
var ErrNotPlayer = usage.NewSimpleType("not_a_player", usage.CategoryCommand, "A player is required to run this command here")

var _ dispatchers.Source = (*Session)(nil)
