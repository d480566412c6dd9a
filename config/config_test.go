package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c := &Config{}
	require.NoError(t, c.Load(nil))
	assert.Equal(t, 1, c.AIPlayer)
	assert.Equal(t, AlgAlphaBeta, c.Algorithm)
	assert.Equal(t, "6*6", c.Size)
	assert.Equal(t, 4, c.Depth)
	assert.Equal(t, "Readme.txt", c.ResultsPath)
	assert.NoError(t, c.Validate())
}

func TestLoadFlags(t *testing.T) {
	c := &Config{}
	require.NoError(t, c.Load([]string{
		"-ai-player", "2", "-algorithm", "MM", "-size", "7*8", "-depth", "6",
	}))
	require.NoError(t, c.Validate())
	assert.Equal(t, 2, c.AIPlayer)
	assert.Equal(t, AlgMinimax, c.Algorithm)
	assert.Equal(t, 6, c.Depth)

	size, err := c.BoardSize()
	require.NoError(t, err)
	assert.Equal(t, BoardSize{Width: 7, Height: 8}, size)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		c := &Config{}
		require.NoError(t, c.Load(nil))
		return c
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad player", func(c *Config) { c.AIPlayer = 3 }},
		{"bad algorithm", func(c *Config) { c.Algorithm = "MCTS" }},
		{"bad size", func(c *Config) { c.Size = "9*9" }},
		{"negative depth", func(c *Config) { c.Depth = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
