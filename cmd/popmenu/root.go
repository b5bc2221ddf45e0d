package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/menu"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
	commit  = "unknown"
)

// exitCancelled is returned when the menu closes without a selection.
const exitCancelled = 2

const (
	printValue = "value"
	printText  = "text"
	printIndex = "index"
)

var printModes = []string{printValue, printText, printIndex}

var opts struct {
	itemsPath    string
	configPath   string
	columns      int
	verbose      bool
	language     string
	messages     []string
	logFile      string
	print        string
	powerButton  bool
	nextUI       bool
	inputMapping string
}

var rootCmd = &cobra.Command{
	Use:   "popmenu --items items.toml",
	Short: "Show a popup grid menu and print the selected item",
	Long: `popmenu opens a full screen grid of items that spring into place, waits
for the user to pick one with the d-pad, a controller or the mouse, and
prints the selection to stdout.

Exit status is 0 on selection, 2 when the menu was dismissed.`,
	Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, popmenu.ErrCancelled) {
			os.Exit(exitCancelled)
		}
		fmt.Fprintln(os.Stderr, "popmenu:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&opts.itemsPath, "items", "i", "", "Path to the items TOML file")
	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Menu config TOML overriding the items file's [menu] table")
	rootCmd.Flags().IntVar(&opts.columns, "columns", 0, "Override the column count")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&opts.language, "language", "", "Language code for built-in labels (e.g. es)")
	rootCmd.Flags().StringSliceVar(&opts.messages, "messages", nil, "go-i18n message files (TOML or JSON)")
	rootCmd.Flags().StringVar(&opts.logFile, "log-file", "popmenu.log", "Log file name under ./logs")
	rootCmd.Flags().StringVar(&opts.print, "print", printValue, "What to print on selection: value, text or index")
	rootCmd.Flags().BoolVar(&opts.powerButton, "power-button", false, "Handle the handheld power key while the menu is open")
	rootCmd.Flags().BoolVar(&opts.nextUI, "nextui", false, "Use the NextUI system palette and fonts")
	rootCmd.Flags().StringVar(&opts.inputMapping, "input-mapping", "", "JSON input mapping file")

	_ = rootCmd.MarkFlagRequired("items")
}

func run(cmd *cobra.Command, _ []string) error {
	if err := validatePrintMode(opts.print); err != nil {
		return err
	}

	file, err := menu.LoadItemsFile(opts.itemsPath)
	if err != nil {
		return err
	}

	cfg := file.Config
	if opts.configPath != "" {
		if cfg, err = menu.LoadConfig(opts.configPath); err != nil {
			return err
		}
	}
	if opts.columns > 0 {
		cfg.ColumnCount = opts.columns
	}

	options := popmenu.DefaultOptions()
	options.LogFilename = opts.logFile
	options.MessageFiles = opts.messages
	options.Language = opts.language
	options.ControllerConfigFile = opts.inputMapping
	options.IsNextUI = opts.nextUI
	if opts.powerButton {
		options.PowerButton = popmenu.DefaultPowerButtonConfig()
	}

	if err := popmenu.Init(options); err != nil {
		return err
	}
	defer popmenu.Close()

	logger := popmenu.GetLogger()
	if opts.verbose {
		popmenu.SetLogLevel(slog.LevelDebug)
		popmenu.SetInternalLogLevel(slog.LevelDebug)
	}

	menuOptions := popmenu.DefaultPopMenuOptions(file.Items)
	menuOptions.Config = cfg

	result, err := popmenu.PopMenu(menuOptions)
	if err != nil {
		logger.Debug("Menu closed without a selection", "error", err)
		return err
	}

	logger.Info("Item selected", "index", result.Index, "text", result.Item.Text)
	return printSelection(cmd.OutOrStdout(), result, opts.print)
}

func validatePrintMode(mode string) error {
	for _, m := range printModes {
		if m == mode {
			return nil
		}
	}
	return fmt.Errorf("invalid --print mode %q (valid: %s)", mode, strings.Join(printModes, ", "))
}

// printSelection writes exactly one line: the formatted selection.
func printSelection(w io.Writer, result *popmenu.PopMenuResult, mode string) error {
	line, err := formatSelection(result, mode)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, line)
	return err
}

func formatSelection(result *popmenu.PopMenuResult, mode string) (string, error) {
	switch mode {
	case printIndex:
		return strconv.Itoa(result.Index), nil
	case printText:
		return result.Item.Text, nil
	case printValue:
		return fmt.Sprint(result.Item.Payload), nil
	}
	return "", validatePrintMode(mode)
}
