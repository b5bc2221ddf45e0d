package menu

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ItemsFile is the TOML form of a menu: an optional [menu] table with the
// same keys as Config, followed by [[items]] entries.
type ItemsFile struct {
	Config Config
	Items  []Item
}

type itemEntry struct {
	Text   string `toml:"text"`
	Icon   string `toml:"icon"`
	Width  int32  `toml:"icon_width"`
	Height int32  `toml:"icon_height"`
	Value  any    `toml:"value"`
}

type itemsDocument struct {
	Menu  toml.Primitive `toml:"menu"`
	Items []itemEntry    `toml:"items"`
}

// DecodeItemsFile parses an items document. Relative icon paths are
// resolved against baseDir. An item's Payload is its value as decoded by
// TOML (string, int64, float64, bool, array or table), or its text when no
// value is given.
func DecodeItemsFile(data []byte, baseDir string) (*ItemsFile, error) {
	var doc itemsDocument
	meta, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}

	cfg := DefaultConfig()
	if meta.IsDefined("menu") {
		if err := meta.PrimitiveDecode(doc.Menu, &cfg); err != nil {
			return nil, fmt.Errorf("decode menu table: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(doc.Items))
	for i, entry := range doc.Items {
		if entry.Text == "" && entry.Icon == "" {
			return nil, &ConfigurationError{
				Field:  fmt.Sprintf("items[%d]", i),
				Value:  entry,
				Reason: "an item needs text or an icon",
			}
		}

		icon := Icon{Width: entry.Width, Height: entry.Height}
		if entry.Icon != "" {
			icon.Filename = entry.Icon
			if !filepath.IsAbs(icon.Filename) && baseDir != "" {
				icon.Filename = filepath.Join(baseDir, icon.Filename)
			}
		}

		payload := entry.Value
		if payload == nil || payload == "" {
			payload = entry.Text
		}

		items = append(items, Item{Text: entry.Text, Icon: icon, Payload: payload})
	}

	return &ItemsFile{Config: cfg, Items: items}, nil
}

func LoadItemsFile(path string) (*ItemsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items file: %w", err)
	}
	return DecodeItemsFile(data, filepath.Dir(path))
}
