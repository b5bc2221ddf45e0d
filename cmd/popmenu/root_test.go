package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/popmenu/pkg/popmenu"
	"github.com/BrandonKowalski/popmenu/pkg/popmenu/menu"
)

func TestPrintSelection(t *testing.T) {
	result := &popmenu.PopMenuResult{
		Index: 2,
		Item:  menu.Item{Text: "Camera", Payload: "camera-app"},
	}

	tests := []struct {
		mode string
		want string
	}{
		{printValue, "camera-app\n"},
		{printText, "Camera\n"},
		{printIndex, "2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			cmd := &cobra.Command{}
			var out bytes.Buffer
			cmd.SetOut(&out)

			require.NoError(t, printSelection(cmd.OutOrStdout(), result, tt.mode))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestPrintSelection_NonStringPayload(t *testing.T) {
	var out bytes.Buffer
	result := &popmenu.PopMenuResult{Item: menu.Item{Text: "Three", Payload: int64(3)}}

	require.NoError(t, printSelection(&out, result, printValue))
	assert.Equal(t, "3\n", out.String())
}

func TestPrintSelection_UnknownMode(t *testing.T) {
	var out bytes.Buffer
	result := &popmenu.PopMenuResult{Item: menu.Item{Text: "Camera"}}

	err := printSelection(&out, result, "json")
	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestValidatePrintMode(t *testing.T) {
	for _, mode := range printModes {
		assert.NoError(t, validatePrintMode(mode))
	}

	err := validatePrintMode("payload")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"payload"`)
	assert.Contains(t, err.Error(), "value, text, index")
}

func TestRun_RejectsUnknownPrintModeBeforeOpeningWindow(t *testing.T) {
	t.Cleanup(func() { opts.print = printValue })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--items", "does-not-exist.toml", "--print", "bogus"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --print mode")
	assert.Empty(t, out.String())
}
