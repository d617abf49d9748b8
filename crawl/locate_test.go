package crawl

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yooung1/sonntag/core"
)

func TestLocate_CaseInsensitiveSubstring(t *testing.T) {
	entries := []core.NavEntry{
		{Text: "Programa de la semana: 1-7 DE ENERO", URL: "/w1"},
	}

	idx, ok := Locate(entries, "1-7 de enero")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestLocate_FirstMatchWins(t *testing.T) {
	entries := []core.NavEntry{
		{Text: "25-31 de diciembre", URL: "/w0"},
		{Text: "1-7 de enero", URL: "/w1"},
		{Text: "1-7 de enero (repetida)", URL: "/w2"},
	}

	idx, ok := Locate(entries, "1-7 de enero")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestLocate_NotFound(t *testing.T) {
	entries := []core.NavEntry{
		{Text: "8-14 de enero", URL: "/w2"},
	}

	_, ok := Locate(entries, "1-7 de enero")
	assert.False(t, ok, "not found is a normal outcome, reported via the bool")
}

func TestLocate_EmptyEntries(t *testing.T) {
	_, ok := Locate(nil, "1-7 de enero")
	assert.False(t, ok)
}

func TestResolveURL(t *testing.T) {
	base, err := url.Parse("https://wol.jw.org/es/wol/library/guia")
	require.NoError(t, err)

	assert.Equal(t, "https://wol.jw.org/es/wol/d/r4/lp-s/202024201",
		ResolveURL("/es/wol/d/r4/lp-s/202024201", base))
	assert.Equal(t, "https://other.example/page",
		ResolveURL("https://other.example/page", base))
	assert.Empty(t, ResolveURL("#top", base))
	assert.Empty(t, ResolveURL("javascript:void(0)", base))
	assert.Empty(t, ResolveURL("", base))
}
