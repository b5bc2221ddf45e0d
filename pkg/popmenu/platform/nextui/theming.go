package nextui

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu/constants"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/internal"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	NextValPathEnvVar = "NEXTVAL_PATH"

	nextValExecutable = "/mnt/SDCARD/.system/tg5040/bin/nextval.elf"
	backgroundPath    = "/mnt/SDCARD/bg.png"
	fontDir           = "/mnt/SDCARD/.system/res"
)

// NextVal is the settings dump printed by nextval.elf.
type NextVal struct {
	Font     int    `json:"font"`
	Color1   string `json:"color1"`
	Color2   string `json:"color2"`
	Color3   string `json:"color3"`
	Color4   string `json:"color4"`
	Color5   string `json:"color5"`
	Color6   string `json:"color6"`
	BGColor  string `json:"bgcolor"`
	FontPath string `json:"fontpath"`
}

var defaultTheme = internal.Theme{
	HighlightColor:       internal.HexToColor(0xFFFFFF),
	AccentColor:          internal.HexToColor(0x9B2257),
	ButtonLabelColor:     internal.HexToColor(0x1E2329),
	HintColor:            internal.HexToColor(0xFFFFFF),
	TextColor:            internal.HexToColor(0xFFFFFF),
	HighlightedTextColor: internal.HexToColor(0x000000),
	BackgroundColor:      internal.HexToColor(0x000000),
	BackdropColor:        internal.HexToColorAlpha(0xC0000000),
	FontPath:             fontDir + "/font1.ttf",
	BackgroundImagePath:  backgroundPath,
}

// InitNextUITheme reads the system palette, falling back to the stock
// NextUI colours when it cannot be loaded.
func InitNextUITheme() internal.Theme {
	var nv *NextVal
	var err error

	if constants.IsDevMode() {
		nv, err = LoadNextValFile(os.Getenv(NextValPathEnvVar))
	} else {
		nv, err = loadNextVal()
	}
	if err != nil {
		internal.GetInternalLogger().Debug("Using default NextUI theme", "error", err)
		return defaultTheme
	}

	theme := internal.Theme{
		HighlightColor:       parseHexColor(nv.Color1),
		AccentColor:          parseHexColor(nv.Color2),
		ButtonLabelColor:     parseHexColor(nv.Color3),
		TextColor:            parseHexColor(nv.Color4),
		HighlightedTextColor: parseHexColor(nv.Color5),
		HintColor:            parseHexColor(nv.Color6),
		BackgroundColor:      parseHexColor(nv.BGColor),
		BackdropColor:        defaultTheme.BackdropColor,
		FontPath:             fontPath(nv),
		BackgroundImagePath:  backgroundPath,
	}

	if constants.IsDevMode() {
		theme.BackgroundImagePath = os.Getenv(constants.BackgroundPathEnvVar)
	}

	return theme
}

// fontPath prefers an explicit path, then the numbered system font.
func fontPath(nv *NextVal) string {
	if nv.FontPath != "" {
		return nv.FontPath
	}
	if nv.Font == 2 {
		return fontDir + "/font2.ttf"
	}
	return fontDir + "/font1.ttf"
}

func LoadNextValFile(filePath string) (*NextVal, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading nextval file: %w", err)
	}
	return parseNextVal(data)
}

func loadNextVal() (*NextVal, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	output, err := exec.CommandContext(ctx, nextValExecutable).Output()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", nextValExecutable, err)
	}
	return parseNextVal(output)
}

func parseNextVal(data []byte) (*NextVal, error) {
	var nextval NextVal
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &nextval); err != nil {
		return nil, fmt.Errorf("error parsing nextval JSON: %w", err)
	}
	return &nextval, nil
}

func parseHexColor(hexStr string) sdl.Color {
	hexStr = strings.TrimPrefix(strings.TrimPrefix(hexStr, "0x"), "#")

	hex, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		return sdl.Color{R: 255, G: 0, B: 0, A: 255}
	}

	return internal.HexToColor(uint32(hex))
}
