package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		args          []string
		wantInput     string
		wantFragments []string
		wantListKeys  bool
	}{
		{
			name:          "positional input and fragments",
			args:          []string{"config.hcl", "a.b", "..c"},
			wantInput:     "config.hcl",
			wantFragments: []string{"a.b", "..c"},
		},
		{
			name:          "input flag keeps all positionals as fragments",
			args:          []string{"-input", "logs/", "training.loss"},
			wantInput:     "logs/",
			wantFragments: []string{"training.loss"},
		},
		{
			name:          "shorthand input flag",
			args:          []string{"-i", "logs/", "a"},
			wantInput:     "logs/",
			wantFragments: []string{"a"},
		},
		{
			name:         "keys listing needs no fragments",
			args:         []string{"-keys", "config.hcl"},
			wantInput:    "config.hcl",
			wantListKeys: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)
			require.NoError(t, err)
			require.False(t, shouldExit)
			require.NotNil(t, cfg)

			assert.Equal(t, tc.wantInput, cfg.InputPath)
			if len(tc.wantFragments) == 0 {
				assert.Empty(t, cfg.Fragments)
			} else {
				assert.Equal(t, tc.wantFragments, cfg.Fragments)
			}
			assert.Equal(t, tc.wantListKeys, cfg.ListKeys)
		})
	}
}

func TestParse_UsageExits(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: nil},
		{name: "input but nothing to do", args: []string{"config.hcl"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)
			require.NoError(t, err)
			assert.True(t, shouldExit)
			assert.Nil(t, cfg)
			assert.Contains(t, out.String(), "Usage:")
		})
	}
}

func TestParse_Validation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		message string
	}{
		{
			name:    "bad log format",
			args:    []string{"-log-format", "xml", "config.hcl", "a"},
			message: "invalid log-format",
		},
		{
			name:    "bad log level",
			args:    []string{"-log-level", "loud", "config.hcl", "a"},
			message: "invalid log-level",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)

			exitErr, ok := err.(*ExitError)
			require.True(t, ok, "validation failures must be ExitErrors")
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.message)
		})
	}
}
