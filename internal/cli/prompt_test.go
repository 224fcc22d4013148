package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptYesNoIO(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"  YES  \n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"", false}, // EOF counts as no
	}
	for _, tc := range cases {
		var out strings.Builder
		got := promptYesNoIO(strings.NewReader(tc.input), &out, "Continue? [y/N] ")
		assert.Equal(t, tc.want, got, "input %q", tc.input)
		assert.Contains(t, out.String(), "Continue?")
	}
}

func TestNewRootCmd_RegistersSubcommands(t *testing.T) {
	root := NewRootCmd(&App{})

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"predict", "presets", "info", "ranges", "history"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
