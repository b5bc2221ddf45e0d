// Package power watches the handheld's power key through evdev and turns
// short presses into suspend and long presses into shutdown.
package power

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"
)

type Config struct {
	ButtonCode      int
	DevicePath      string
	ShortPressMax   time.Duration
	CoolDownTime    time.Duration
	SuspendScript   string
	ShutdownCommand string
}

// Enabled reports whether enough is configured to start a watcher.
func (c Config) Enabled() bool {
	return c.DevicePath != "" && c.ButtonCode != 0
}

type Action int

const (
	ActionNone Action = iota
	ActionSuspend
	ActionShutdown
)

func (a Action) String() string {
	switch a {
	case ActionSuspend:
		return "suspend"
	case ActionShutdown:
		return "shutdown"
	default:
		return "none"
	}
}

// Runner executes a system command. Tests swap in a recorder.
type Runner func(ctx context.Context, name string, args ...string) error

func execRunner(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// Classify maps a press duration to an action. Presses that end within the
// cool-down after the previous action are ignored.
func (c Config) Classify(held time.Duration, sinceLastAction time.Duration) Action {
	if sinceLastAction < c.CoolDownTime {
		return ActionNone
	}
	if held <= c.ShortPressMax {
		if c.SuspendScript == "" {
			return ActionNone
		}
		return ActionSuspend
	}
	if c.ShutdownCommand == "" {
		return ActionNone
	}
	return ActionShutdown
}

type Watcher struct {
	config Config
	logger *slog.Logger
	run    Runner
	now    func() time.Time

	device *evdev.InputDevice
	cancel context.CancelFunc
	wg     sync.WaitGroup

	pressedAt  time.Time
	lastAction time.Time
}

func NewWatcher(config Config, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Watcher{
		config: config,
		logger: logger,
		run:    execRunner,
		now:    time.Now,
	}
}

// Start opens the device and reads it on a background goroutine until Close.
func (w *Watcher) Start(ctx context.Context) error {
	device, err := evdev.Open(w.config.DevicePath)
	if err != nil {
		return fmt.Errorf("open power button device %s: %w", w.config.DevicePath, err)
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.device = device

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.readLoop(ctx)
	}()

	w.logger.Debug("Power button watcher started", "device", w.config.DevicePath, "code", w.config.ButtonCode)
	return nil
}

func (w *Watcher) readLoop(ctx context.Context) {
	for {
		event, err := w.device.ReadOne()
		if err != nil {
			if ctx.Err() == nil {
				w.logger.Error("Power button read failed", "error", err)
			}
			return
		}

		if event.Type != evdev.EV_KEY || int(event.Code) != w.config.ButtonCode {
			continue
		}

		w.HandleKey(ctx, event.Value)
	}
}

// HandleKey consumes one key event value: 1 press, 0 release, 2 autorepeat.
func (w *Watcher) HandleKey(ctx context.Context, value int32) Action {
	switch value {
	case 1:
		w.pressedAt = w.now()
		return ActionNone
	case 0:
		if w.pressedAt.IsZero() {
			return ActionNone
		}
	default:
		return ActionNone
	}

	now := w.now()
	held := now.Sub(w.pressedAt)
	w.pressedAt = time.Time{}

	sinceLast := now.Sub(w.lastAction)
	if w.lastAction.IsZero() {
		sinceLast = w.config.CoolDownTime
	}

	action := w.config.Classify(held, sinceLast)
	if action == ActionNone {
		return action
	}

	w.lastAction = now
	w.logger.Info("Power button pressed", "held", held, "action", action.String())

	var err error
	switch action {
	case ActionSuspend:
		err = w.run(ctx, w.config.SuspendScript)
	case ActionShutdown:
		err = w.run(ctx, w.config.ShutdownCommand)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		w.logger.Error("Power action failed", "action", action.String(), "error", err)
	}

	return action
}

// Close stops the read loop. Closing the device unblocks ReadOne.
func (w *Watcher) Close() error {
	if w.cancel == nil {
		return nil
	}
	w.cancel()

	err := w.device.Close()
	w.wg.Wait()
	w.cancel = nil
	return err
}
