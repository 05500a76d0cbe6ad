package shortid

import (
	"errors"
	"fmt"

	"github.com/viant/shortid/internal/clock"
	"github.com/viant/shortid/radix"
)

// Config is a serialisable representation of the generator settings. It can
// be populated from JSON, YAML or TOML. Empty fields inherit DefaultConfig.
type Config struct {
	Offset string `json:"offset,omitempty" yaml:"offset,omitempty" toml:"offset,omitempty"`
	Start  int64  `json:"start,omitempty" yaml:"start,omitempty" toml:"start,omitempty"`
	Rate   string `json:"rate,omitempty" yaml:"rate,omitempty" toml:"rate,omitempty"`
	Radix  int    `json:"radix,omitempty" yaml:"radix,omitempty" toml:"radix,omitempty"`
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty" toml:"prefix,omitempty"`
}

// DefaultConfig returns the settings used by Default.
func DefaultConfig() *Config {
	return &Config{
		Offset: DefaultOffset.Format("2006-01-02T15:04:05"),
		Start:  0,
		Rate:   RateHigh.String(),
		Radix:  radix.Base62.Size(),
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	_, err := c.Options()
	return err
}

// Options converts the config into generator options.
func (c *Config) Options() ([]Option, error) {
	if c == nil {
		return nil, nil
	}
	var errs []error
	var options []Option
	if c.Offset != "" {
		offset, err := clock.Parse(c.Offset)
		if err != nil {
			errs = append(errs, fmt.Errorf("offset: %w: %v", ErrInvalidArgument, err))
		} else {
			options = append(options, WithOffset(offset))
		}
	}
	if c.Start < 0 {
		errs = append(errs, fmt.Errorf("start: %w: must be >= 0, got %d", ErrInvalidArgument, c.Start))
	} else {
		options = append(options, WithStart(c.Start))
	}
	if c.Rate != "" {
		rate, err := ParseRate(c.Rate)
		if err != nil {
			errs = append(errs, fmt.Errorf("rate: %w", err))
		} else {
			options = append(options, WithRate(rate))
		}
	}
	if c.Radix != 0 {
		r, err := radix.Lookup(c.Radix)
		if err != nil {
			errs = append(errs, fmt.Errorf("radix: %w", err))
		} else {
			options = append(options, WithRadix(r))
		}
	}
	if c.Prefix != "" {
		options = append(options, WithPrefix(c.Prefix))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return options, nil
}

// NewFromConfig creates a Generator from cfg; a nil cfg yields Default settings.
func NewFromConfig(cfg *Config, options ...Option) (*Generator, error) {
	configured, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(append(configured, options...)...)
}
