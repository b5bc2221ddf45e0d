package internal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu/constants"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal/logging"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal/power"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window
var powerWatcher *power.Watcher

func GetInternalLogger() *slog.Logger {
	return logging.GetInternalLogger()
}

// Init brings up SDL, the window, fonts and controllers. It must be paired
// with SDLCleanup.
func Init(title string, showBackground bool, sizes FontSizes, pbc power.Config) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER); err != nil {
		return fmt.Errorf("init SDL: %w", err)
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		GetInternalLogger().Warn("SDL_image init incomplete", "error", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("init SDL_ttf: %w", err)
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1")

	var err error
	window, err = initWindow(title, showBackground)
	if err != nil {
		quitSubsystems()
		return fmt.Errorf("create window: %w", err)
	}

	if err := initFonts(sizes); err != nil {
		window.closeWindow()
		window = nil
		quitSubsystems()
		return err
	}

	InitInputProcessor()

	if pbc.Enabled() && !constants.IsDevMode() {
		powerWatcher = power.NewWatcher(pbc, GetInternalLogger())
		if err := powerWatcher.Start(context.Background()); err != nil {
			GetInternalLogger().Warn("Power button handling disabled", "error", err)
			powerWatcher = nil
		}
	}

	return nil
}

func SDLCleanup() {
	if powerWatcher != nil {
		if err := powerWatcher.Close(); err != nil {
			GetInternalLogger().Debug("Closing power button device", "error", err)
		}
		powerWatcher = nil
	}

	CloseAllControllers()
	closeFonts()

	if window != nil {
		window.closeWindow()
		window = nil
	}

	quitSubsystems()
	logging.CloseLogger()
}

func quitSubsystems() {
	ttf.Quit()
	img.Quit()
	sdl.Quit()
}
