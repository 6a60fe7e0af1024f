// Package config loads game settings from an HCL file. Settings are read
// once at session start and passed by value into the pieces that need
// them; there is no ambient settings singleton.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/amcsparron2793/blackjack/cards"
)

// fileConfig mirrors the HCL layout; every block is optional
type fileConfig struct {
	Game     *gameBlock     `hcl:"game,block"`
	Cards    *cardsBlock    `hcl:"cards,block"`
	Database *databaseBlock `hcl:"database,block"`
}

type gameBlock struct {
	StartingChips int    `hcl:"starting_chips,optional"`
	DealerPolicy  string `hcl:"dealer_policy,optional"`
}

type cardsBlock struct {
	Unicode              *bool  `hcl:"unicode,optional"`
	CardBack             string `hcl:"card_back,optional"`
	ShoeWarningThreshold *int   `hcl:"shoe_warning_threshold,optional"`
}

type databaseBlock struct {
	Enabled bool   `hcl:"enabled,optional"`
	Path    string `hcl:"path,optional"`
}

// Settings is the resolved, immutable configuration for one session
type Settings struct {
	StartingChips        int
	DealerPolicy         string
	UnicodeCards         bool
	CardBack             string
	ShoeWarningThreshold int
	DatabaseEnabled      bool
	DatabasePath         string
}

// Default returns the built-in settings, used when no config file exists
func Default() *Settings {
	return &Settings{
		StartingChips:        250,
		DealerPolicy:         "seventeen",
		UnicodeCards:         true,
		ShoeWarningThreshold: cards.DefaultLowWaterMark,
		DatabaseEnabled:      false,
		DatabasePath:         "blackjack.db",
	}
}

// Load reads settings from an HCL file. A missing file yields defaults; a
// malformed or invalid file is a fatal startup error.
func Load(filename string) (*Settings, error) {
	s := Default()
	if filename == "" {
		return s, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return s, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file: %s", diags.Error())
	}

	if fc.Game != nil {
		if fc.Game.StartingChips != 0 {
			s.StartingChips = fc.Game.StartingChips
		}
		if fc.Game.DealerPolicy != "" {
			s.DealerPolicy = fc.Game.DealerPolicy
		}
	}
	if fc.Cards != nil {
		if fc.Cards.Unicode != nil {
			s.UnicodeCards = *fc.Cards.Unicode
		}
		if fc.Cards.CardBack != "" {
			s.CardBack = fc.Cards.CardBack
		}
		if fc.Cards.ShoeWarningThreshold != nil {
			s.ShoeWarningThreshold = *fc.Cards.ShoeWarningThreshold
		}
	}
	if fc.Database != nil {
		s.DatabaseEnabled = fc.Database.Enabled
		if fc.Database.Path != "" {
			s.DatabasePath = fc.Database.Path
		}
	}

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) validate() error {
	if s.StartingChips <= 0 {
		return fmt.Errorf("starting_chips must be positive, got %d", s.StartingChips)
	}
	if s.ShoeWarningThreshold < 0 {
		return fmt.Errorf("shoe_warning_threshold must not be negative, got %d", s.ShoeWarningThreshold)
	}
	switch s.DealerPolicy {
	case "seventeen", "legacy":
	default:
		return fmt.Errorf("unknown dealer_policy %q", s.DealerPolicy)
	}
	return nil
}

// CardStyle returns the configured presentation style
func (s *Settings) CardStyle() cards.Style {
	if s.UnicodeCards {
		return cards.StyleUnicode
	}
	return cards.StylePlaintext
}

// CardBackToken returns the card-back token, honouring an override
func (s *Settings) CardBackToken() string {
	if s.CardBack != "" {
		return s.CardBack
	}
	return s.CardStyle().Back()
}
