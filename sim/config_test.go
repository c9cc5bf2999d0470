package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSetAssocConfig() Config {
	return Config{
		CacheCapacity: 8,
		SetSize:       2,
		AddressBits:   16,
		OffsetBits:    2,
		Mapping:       MappingSetAssociative,
		Policy:        PolicyLRU,
	}
}

func TestConfigValidate_Accepts(t *testing.T) {
	assert.NoError(t, validSetAssocConfig().Validate())
	assert.NoError(t, Config{
		CacheCapacity: 1,
		AddressBits:   1,
		Mapping:       MappingDirect,
		Policy:        PolicyRandom,
	}.Validate())
}

func TestConfigValidate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero capacity", func(c *Config) { c.CacheCapacity = 0 }},
		{"negative capacity", func(c *Config) { c.CacheCapacity = -4 }},
		{"non power-of-two capacity", func(c *Config) { c.CacheCapacity = 6 }},
		{"set size does not divide capacity", func(c *Config) { c.SetSize = 3 }},
		{"zero set size", func(c *Config) { c.SetSize = 0 }},
		{"offset bits exceed address bits", func(c *Config) { c.OffsetBits = 17 }},
		{"negative offset bits", func(c *Config) { c.OffsetBits = -1 }},
		{"zero address bits", func(c *Config) { c.AddressBits = 0 }},
		{"address bits over 64", func(c *Config) { c.AddressBits = 65 }},
		{"unknown mapping", func(c *Config) { c.Mapping = "skewed" }},
		{"unknown policy", func(c *Config) { c.Policy = "mru" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validSetAssocConfig()
			tc.mutate(&c)
			err := c.Validate()
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestConfigValidate_SetSizeIgnoredOutsideSetAssociative(t *testing.T) {
	// Direct mapping never consults SetSize, so a zero value is fine there.
	c := Config{
		CacheCapacity: 8,
		SetSize:       0,
		AddressBits:   16,
		Mapping:       MappingDirect,
		Policy:        PolicyFIFO,
	}
	assert.NoError(t, c.Validate())
}

func TestConfigNumSets(t *testing.T) {
	c := validSetAssocConfig()
	assert.Equal(t, 4, c.NumSets())

	c.Mapping = MappingDirect
	assert.Equal(t, 8, c.NumSets())

	c.Mapping = MappingFullyAssociative
	assert.Equal(t, 1, c.NumSets())
}

func TestParseMappingStrategy(t *testing.T) {
	for in, want := range map[string]MappingStrategy{
		"direct":            MappingDirect,
		"fully-associative": MappingFullyAssociative,
		"fully":             MappingFullyAssociative,
		"set-associative":   MappingSetAssociative,
		"set":               MappingSetAssociative,
	} {
		got, err := ParseMappingStrategy(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMappingStrategy("victim")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestParseReplacementPolicy(t *testing.T) {
	for _, in := range []string{"fifo", "lru", "lfu", "random"} {
		got, err := ParseReplacementPolicy(in)
		assert.NoError(t, err, in)
		assert.Equal(t, ReplacementPolicy(in), got)
	}

	_, err := ParseReplacementPolicy("plru")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
