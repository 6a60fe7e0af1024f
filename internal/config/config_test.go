package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amcsparron2793/blackjack/cards"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
game {
  starting_chips = 500
  dealer_policy  = "legacy"
}

cards {
  unicode                = false
  shoe_warning_threshold = 10
}

database {
  enabled = true
  path    = "/tmp/test.db"
}
`)
	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500, s.StartingChips)
	assert.Equal(t, "legacy", s.DealerPolicy)
	assert.False(t, s.UnicodeCards)
	assert.Equal(t, 10, s.ShoeWarningThreshold)
	assert.True(t, s.DatabaseEnabled)
	assert.Equal(t, "/tmp/test.db", s.DatabasePath)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
game {
  starting_chips = 100
}
`)
	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 100, s.StartingChips)
	assert.Equal(t, "seventeen", s.DealerPolicy)
	assert.True(t, s.UnicodeCards)
	assert.Equal(t, cards.DefaultLowWaterMark, s.ShoeWarningThreshold)
	assert.False(t, s.DatabaseEnabled)
}

func TestLoadMalformedConfig(t *testing.T) {
	path := writeConfig(t, `game { starting_chips = `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative chips", "game {\n  starting_chips = -5\n}\n"},
		{"unknown policy", "game {\n  dealer_policy = \"soft17\"\n}\n"},
		{"negative threshold", "cards {\n  shoe_warning_threshold = -1\n}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestCardStyle(t *testing.T) {
	s := Default()
	assert.Equal(t, cards.StyleUnicode, s.CardStyle())
	assert.Equal(t, cards.UnicodeCardBack, s.CardBackToken())

	s.UnicodeCards = false
	assert.Equal(t, cards.StylePlaintext, s.CardStyle())
	assert.Equal(t, cards.PlaintextCardBack, s.CardBackToken())

	s.CardBack = "##"
	assert.Equal(t, "##", s.CardBackToken())
}
