// Package input translates raw key presses and clicks into review commands.
package input

//go:generate mockgen -source=adapter.go -destination=mock/adapter_mock.go

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/chen-yiru/Vocabulary-review/internal/models"
	"go.uber.org/zap"
)

var ErrDetached = errors.New("input adapter is detached")

type Key string

const (
	KeySpace      Key = "Space"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyR          Key = "KeyR"
)

type Command int

const (
	CommandNone Command = iota
	CommandReveal
	CommandCorrect
	CommandIncorrect
	CommandRestart
)

func (c Command) String() string {
	switch c {
	case CommandReveal:
		return "reveal"
	case CommandCorrect:
		return "correct"
	case CommandIncorrect:
		return "incorrect"
	case CommandRestart:
		return "restart"
	default:
		return "none"
	}
}

// ParseKey maps a typed shortcut to a key for shells that read text lines
// instead of key codes.
func ParseKey(text string) (Key, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "space", "s", "show":
		return KeySpace, true
	case "←", "left", "wrong", "no", "h":
		return KeyArrowLeft, true
	case "→", "right", "yes", "l":
		return KeyArrowRight, true
	case "r", "restart":
		return KeyR, true
	}
	return "", false
}

// KeyEvent is one key-down. Repeat is set by sources that know about
// auto-repeat; TextFocus is set when a text field owns the keyboard.
type KeyEvent struct {
	Source    string
	Code      Key
	Repeat    bool
	TextFocus bool
}

type ClickEvent struct {
	Source  string
	Command Command
}

type EngineI interface {
	Reveal() error
	Answer(ctx context.Context, isCorrect bool) error
	Restart(ctx context.Context) error
	Phase() models.Phase
}

type press struct {
	key Key
	at  time.Time
}

// Adapter feeds keyboard and pointer input into one engine. It only forwards
// events between Attach and Detach. A key that repeats from the same source
// within the repeat window counts as auto-repeat and is dropped, so one
// physical press yields at most one command.
type Adapter struct {
	engine EngineI
	window time.Duration
	now    func() time.Time
	log    *zap.Logger

	mu       sync.Mutex
	attached bool
	last     map[string]press
}

func NewAdapter(engine EngineI, window time.Duration, log *zap.Logger) *Adapter {
	return &Adapter{
		engine: engine,
		window: window,
		now:    time.Now,
		log:    log,
		last:   make(map[string]press),
	}
}

func (a *Adapter) Attach() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.attached = true
	a.last = make(map[string]press)
}

func (a *Adapter) Detach() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.attached = false
	a.last = make(map[string]press)
}

func (a *Adapter) Attached() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.attached
}

// HandleKey maps a key press to a command and runs it. The returned command
// is CommandNone when the event was dropped before reaching the engine.
func (a *Adapter) HandleKey(ctx context.Context, ev KeyEvent) (Command, error) {
	if ev.TextFocus || ev.Repeat {
		return CommandNone, nil
	}

	a.mu.Lock()
	if !a.attached {
		a.mu.Unlock()
		return CommandNone, ErrDetached
	}
	now := a.now()
	prev, seen := a.last[ev.Source]
	a.last[ev.Source] = press{key: ev.Code, at: now}
	a.mu.Unlock()

	if seen && prev.key == ev.Code && now.Sub(prev.at) < a.window {
		a.log.Debug("auto-repeat suppressed", zap.String("source", ev.Source), zap.String("key", string(ev.Code)))
		return CommandNone, nil
	}

	cmd := a.keyCommand(ev.Code)
	if cmd == CommandNone {
		return CommandNone, nil
	}

	return cmd, a.dispatch(ctx, cmd)
}

func (a *Adapter) keyCommand(key Key) Command {
	switch key {
	case KeySpace:
		return CommandReveal
	case KeyArrowLeft:
		return CommandIncorrect
	case KeyArrowRight:
		return CommandCorrect
	case KeyR:
		return a.gate(CommandRestart)
	}
	return CommandNone
}

// gate drops a restart unless the session has ended.
func (a *Adapter) gate(cmd Command) Command {
	if cmd == CommandRestart && !a.engine.Phase().Terminal() {
		return CommandNone
	}
	return cmd
}

// HandleClick runs the command a pointer target stands for, under the same
// phase rules as the keyboard.
func (a *Adapter) HandleClick(ctx context.Context, ev ClickEvent) (Command, error) {
	if !a.Attached() {
		return CommandNone, ErrDetached
	}

	cmd := a.gate(ev.Command)
	if cmd == CommandNone {
		return CommandNone, nil
	}

	return cmd, a.dispatch(ctx, cmd)
}

func (a *Adapter) dispatch(ctx context.Context, cmd Command) error {
	switch cmd {
	case CommandReveal:
		return a.engine.Reveal()
	case CommandCorrect:
		return a.engine.Answer(ctx, true)
	case CommandIncorrect:
		return a.engine.Answer(ctx, false)
	case CommandRestart:
		return a.engine.Restart(ctx)
	}
	return nil
}
