package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const spanish = `
[popmenu_close]
other = "Cerrar"

[popmenu_item_count]
one = "{{.Count}} elemento"
other = "{{.Count}} elementos"
`

func TestLocalize_WithoutBundle(t *testing.T) {
	Reset()

	assert.Equal(t, "Close", Localize(CloseLabel, nil))
	assert.Equal(t, "missing_key", GetString("missing_key"))
	assert.Equal(t, "3 items", LocalizePlural(ItemCount, 3, map[string]any{"Count": 3}))
	assert.Equal(t, "1 item", LocalizePlural(ItemCount, 1, map[string]any{"Count": 1}))
	assert.Empty(t, Localize(nil, nil))
}

func TestLocalize_FromBytes(t *testing.T) {
	t.Cleanup(Reset)

	require.NoError(t, InitI18NFromBytes([]MessageFile{{Name: "active.es.toml", Content: []byte(spanish)}}))
	require.NoError(t, SetWithCode("es"))

	assert.Equal(t, "Cerrar", Localize(CloseLabel, nil))
	assert.Equal(t, "Cerrar", GetString("popmenu_close"))
	assert.Equal(t, "2 elementos", LocalizePlural(ItemCount, 2, map[string]any{"Count": 2}))

	require.NoError(t, SetWithCode("en"))
	assert.Equal(t, "Close", Localize(CloseLabel, nil))
}

func TestHintLine(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	assert.Equal(t, "A Select   B Close   1 item", HintLine(1))
	assert.Equal(t, "A Select   B Close   6 items", HintLine(6))

	require.NoError(t, InitI18NFromBytes([]MessageFile{{Name: "active.es.toml", Content: []byte(spanish)}}))
	require.NoError(t, SetWithCode("es"))
	assert.Equal(t, "A Select   B Close   4 elementos", HintLine(4))
}

func TestInitI18NFromBytes_Invalid(t *testing.T) {
	t.Cleanup(Reset)

	err := InitI18NFromBytes([]MessageFile{{Name: "broken.es.toml", Content: []byte("[popmenu_close")}})
	assert.Error(t, err)
}

func TestSetWithCode_Invalid(t *testing.T) {
	t.Cleanup(Reset)
	assert.Error(t, SetWithCode("not a language!"))
}
