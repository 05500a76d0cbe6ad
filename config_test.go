package shortid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/shortid/radix"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	gen, err := NewFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultOffset, gen.Offset())
	assert.Equal(t, RateHigh, gen.Rate())
	assert.Equal(t, radix.Base62, gen.Radix())
	assert.EqualValues(t, 238328, gen.MaxIDsPerSecond())
}

func TestConfig_Options(t *testing.T) {
	cfg := &Config{Offset: "2023-06-01T00:00:00", Start: 10, Rate: "low", Radix: 36, Prefix: "X"}
	gen, err := NewFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), gen.Offset())
	assert.Equal(t, radix.Base36, gen.Radix())

	id, err := gen.Generate(gen.Offset().Add(36 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, "100B", id)
}

func TestConfig_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		config      *Config
		expectErr   bool
	}{
		{description: "nil", config: nil},
		{description: "empty inherits defaults", config: &Config{}},
		{description: "bad offset", config: &Config{Offset: "soon"}, expectErr: true},
		{description: "negative start", config: &Config{Start: -5}, expectErr: true},
		{description: "bad rate", config: &Config{Rate: "extreme"}, expectErr: true},
		{description: "bad radix", config: &Config{Radix: 16}, expectErr: true},
	}
	for _, testCase := range testCases {
		err := testCase.config.Validate()
		if testCase.expectErr {
			assert.ErrorIs(t, err, ErrInvalidArgument, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
	}
}

func TestConfig_ValidateAggregates(t *testing.T) {
	err := (&Config{Rate: "x", Radix: 10}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate:")
	assert.Contains(t, err.Error(), "radix:")
}

func TestNewFromConfig_OptionsOverride(t *testing.T) {
	gen, err := NewFromConfig(&Config{Rate: "high"}, WithRate(RateLow))
	require.NoError(t, err)
	assert.Equal(t, RateLow, gen.Rate())
}
