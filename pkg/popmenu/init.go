package popmenu

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu/i18n"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal/logging"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal/power"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/platform/cannoli"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/platform/nextui"
)

const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

type PowerButtonConfig = power.Config

type Options struct {
	WindowTitle          string
	ShowBackground       bool
	IsNextUI             bool
	PrimaryThemeColorHex uint32
	// BackdropColorHex is 0xAARRGGBB; zero keeps the theme default.
	BackdropColorHex     uint32
	FontPath             string
	FontSizes            internal.FontSizes
	ControllerConfigFile string
	InputMappingBytes    []byte
	LogFilename          string
	MessageFiles         []string
	Language             string
	PowerButton          PowerButtonConfig
}

func DefaultOptions() Options {
	return Options{
		WindowTitle: "popmenu",
		FontSizes:   internal.DefaultFontSizes,
	}
}

// DefaultPowerButtonConfig matches the TrimUI handheld's power key.
func DefaultPowerButtonConfig() PowerButtonConfig {
	return PowerButtonConfig{
		ButtonCode:      116,
		DevicePath:      "/dev/input/event1",
		ShortPressMax:   2 * time.Second,
		CoolDownTime:    1 * time.Second,
		SuspendScript:   "/mnt/SDCARD/.system/tg5040/bin/suspend",
		ShutdownCommand: "/sbin/poweroff",
	}
}

var initialized bool

// Init initializes SDL and the UI
// Must be called before PopMenu!
func Init(options Options) error {
	if options.LogFilename != "" {
		logging.SetLogFilename(options.LogFilename)
	}

	if os.Getenv("POPMENU_DEBUG") != "" {
		logging.SetInternalLogLevel(slog.LevelDebug)
	} else {
		logging.SetInternalLogLevel(slog.LevelError)
	}

	if options.FontSizes == (internal.FontSizes{}) {
		options.FontSizes = internal.DefaultFontSizes
	}

	var theme internal.Theme
	if options.IsNextUI {
		theme = nextui.InitNextUITheme()
		if options.FontPath != "" {
			theme.FontPath = options.FontPath
		}
	} else {
		if options.FontPath == "" {
			options.FontPath = DefaultFontPath
		}
		theme = cannoli.InitCannoliTheme(options.FontPath)
	}

	if options.PrimaryThemeColorHex != 0 && !options.IsNextUI {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	if options.BackdropColorHex != 0 {
		theme.BackdropColor = internal.HexToColorAlpha(options.BackdropColorHex)
	}
	internal.SetTheme(theme)

	if len(options.InputMappingBytes) > 0 {
		internal.SetInputMappingBytes(options.InputMappingBytes)
	} else if options.ControllerConfigFile != "" {
		data, err := os.ReadFile(options.ControllerConfigFile)
		if err != nil {
			return fmt.Errorf("read controller config: %w", err)
		}
		internal.SetInputMappingBytes(data)
	}

	if len(options.MessageFiles) > 0 {
		if err := i18n.InitI18N(options.MessageFiles); err != nil {
			return fmt.Errorf("load message files: %w", err)
		}
	}
	if options.Language != "" {
		if err := i18n.SetWithCode(options.Language); err != nil {
			return fmt.Errorf("set language %q: %w", options.Language, err)
		}
	}

	if err := internal.Init(options.WindowTitle, options.ShowBackground, options.FontSizes, options.PowerButton); err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close Tidies up SDL and the UI
// Must be called after all UI functions!
func Close() {
	if !initialized {
		return
	}
	internal.SDLCleanup()
	initialized = false
}

func SetLogFilename(filename string) {
	logging.SetLogFilename(filename)
}

func GetLogger() *slog.Logger {
	return logging.GetLogger()
}

func SetLogLevel(level slog.Level) {
	logging.SetLogLevel(level)
}

// SetInternalLogLevel controls the menu's own logging, which stays at error
// unless POPMENU_DEBUG is set.
func SetInternalLogLevel(level slog.Level) {
	logging.SetInternalLogLevel(level)
}

func SetRawLogLevel(level string) {
	logging.SetRawLogLevel(level)
}

func SetInputMappingBytes(data []byte) {
	internal.SetInputMappingBytes(data)
}

func HideWindow() {
	internal.GetWindow().Window.Hide()
}

func ShowWindow() {
	internal.GetWindow().Window.Show()
}
