package i18n

import (
	"encoding/json"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message is an alias for i18n.Message to avoid requiring users to import go-i18n directly
type Message = i18n.Message

type MessageFile struct {
	Name    string
	Content []byte
}

type state struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
}

var (
	mu      sync.RWMutex
	current *state
)

// Built-in strings drawn by the popup.
var (
	CloseLabel = &Message{
		ID:    "popmenu_close",
		Other: "Close",
	}
	HintLabel = &Message{
		ID:    "popmenu_hint",
		Other: "A Select   B Close",
	}
	ItemCount = &Message{
		ID:    "popmenu_item_count",
		One:   "{{.Count}} item",
		Other: "{{.Count}} items",
	}
)

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

func install(bundle *i18n.Bundle, langs ...string) {
	mu.Lock()
	defer mu.Unlock()
	current = &state{localizer: i18n.NewLocalizer(bundle, langs...), bundle: bundle}
}

func InitI18N(messageFilePaths []string) error {
	bundle := newBundle()

	for _, messageFile := range messageFilePaths {
		if _, err := bundle.LoadMessageFile(messageFile); err != nil {
			return err
		}
	}

	install(bundle, language.English.String())
	return nil
}

func InitI18NFromBytes(messageFiles []MessageFile) error {
	bundle := newBundle()

	for _, messageFile := range messageFiles {
		if _, err := bundle.ParseMessageFileBytes(messageFile.Content, messageFile.Name); err != nil {
			return err
		}
	}

	install(bundle, language.English.String())
	return nil
}

// Reset drops any loaded bundle; lookups fall back to message defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = nil
}

func SetLanguage(lang language.Tag) {
	mu.RLock()
	s := current
	mu.RUnlock()

	bundle := newBundle()
	if s != nil {
		bundle = s.bundle
	}
	install(bundle, lang.String())
}

func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

func localizer() *i18n.Localizer {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return nil
	}
	return current.localizer
}

// GetString looks up a message by ID, returning the ID when it is unknown.
func GetString(key string) string {
	l := localizer()
	if l == nil {
		return key
	}
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		return key
	}
	return msg
}

// Localize resolves message in the current language, falling back to the
// message's own default text when no bundle is loaded or no translation
// exists.
func Localize(message *Message, templateData map[string]any) string {
	return LocalizePlural(message, nil, templateData)
}

// LocalizePlural is Localize with a plural count; count may be nil.
func LocalizePlural(message *Message, count any, templateData map[string]any) string {
	if message == nil {
		return ""
	}

	config := &i18n.LocalizeConfig{
		DefaultMessage: message,
		TemplateData:   templateData,
		PluralCount:    count,
	}

	l := localizer()
	if l == nil {
		l = i18n.NewLocalizer(newBundle(), language.English.String())
	}

	// A fallback to the default message is reported as an error alongside
	// the rendered text.
	msg, err := l.Localize(config)
	if err != nil && msg == "" {
		return message.Other
	}
	return msg
}

// HintLine is the line drawn above the grid: the controller hint followed
// by the item count.
func HintLine(itemCount int) string {
	hint := Localize(HintLabel, nil)
	count := LocalizePlural(ItemCount, itemCount, map[string]any{"Count": itemCount})
	if hint == "" {
		return count
	}
	return hint + "   " + count
}
