package tlvdump

import (
	"github.com/pkg/math"
	"github.com/usnistgov/bertlv/ber/tlv"
)

// Indentation limits.
const (
	DefaultIndent = 2
	MaxIndent     = 16
)

// Config contains rendering settings.
type Config struct {
	tlv.WalkerConfig

	// Indent is the number of spaces per nesting level.
	// Default is DefaultIndent.
	Indent int `json:"indent,omitempty"`
}

func (cfg *Config) applyDefaults() {
	if cfg.Indent <= 0 {
		cfg.Indent = DefaultIndent
	}
	cfg.Indent = math.MinInt(cfg.Indent, MaxIndent)
}
