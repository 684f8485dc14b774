package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONExtractor_Extract(t *testing.T) {
	ex := NewJSONExtractor()

	tests := []struct {
		name string
		text string
		want map[string]any
	}{
		{"fenced block", "Here you go:\n```json\n{\"a\":1}\n```\nEnjoy!", map[string]any{"a": float64(1)}},
		{"fenced block upper-case tag", "```JSON\n{\"a\":1}\n```", map[string]any{"a": float64(1)}},
		{"raw object", `{"a":1}`, map[string]any{"a": float64(1)}},
		{"object inside prose", "以下がプランです。\n{\"a\":1}\nよい旅を", map[string]any{"a": float64(1)}},
		{"braces inside strings", `note {"a":"}{","b":{"c":"\"}"}} tail`, map[string]any{"a": "}{", "b": map[string]any{"c": "\"}"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]any
			require.NoError(t, ex.Extract(tt.text, &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONExtractor_Array(t *testing.T) {
	var got []map[string]any
	err := NewJSONExtractor().Extract("Recommendations:\n[{\"name\":\"金閣寺\"},{\"name\":\"嵐山\"}]", &got)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "金閣寺", got[0]["name"])
}

func TestJSONExtractor_ArrayBeforeObject(t *testing.T) {
	var got []any
	require.NoError(t, NewJSONExtractor().Extract(`[1, {"a": 2}]`, &got))
	assert.Len(t, got, 2)
}

func TestJSONExtractor_SkipsBracketedProse(t *testing.T) {
	t.Run("object after bracketed prose", func(t *testing.T) {
		var got map[string]any
		err := NewJSONExtractor().Extract("プラン [概要] は以下です:\n{\"schedule\":[{\"day\":\"Day 1\"}]}", &got)
		require.NoError(t, err)
		require.Contains(t, got, "schedule")
		assert.Len(t, got["schedule"], 1)
	})

	t.Run("array after braced prose", func(t *testing.T) {
		var got []map[string]any
		err := NewJSONExtractor().Extract("おすすめ{10件}です:\n[{\"name\":\"金閣寺\"}]", &got)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "金閣寺", got[0]["name"])
	})

	t.Run("failed candidates leave the target untouched", func(t *testing.T) {
		got := map[string]any{"keep": true}
		err := NewJSONExtractor().Extract("[概要] と {不明}", &got)

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "delimited-span", pe.Strategy)
		assert.Equal(t, map[string]any{"keep": true}, got)
	})
}

func TestDelimitedSpanStrategy_Candidates(t *testing.T) {
	got := DelimitedSpanStrategy{}.Candidates(`a [b] {"c":[1]} {`)
	assert.Equal(t, []string{"[b]", `{"c":[1]}`, "[1]"}, got)

	assert.Empty(t, DelimitedSpanStrategy{}.Candidates("no delimiters"))
}

func TestJSONExtractor_ParseError(t *testing.T) {
	t.Run("no json at all", func(t *testing.T) {
		var got map[string]any
		err := NewJSONExtractor().Extract("sorry, I cannot help with that", &got)

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "whole-text", pe.Strategy)
	})

	t.Run("broken fenced block does not fall through", func(t *testing.T) {
		var got map[string]any
		err := NewJSONExtractor().Extract("```json\n{\"a\":}\n```\n{\"a\":1}", &got)

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "fenced-block", pe.Strategy)
	})

	t.Run("unbalanced span falls back to whole text", func(t *testing.T) {
		var got map[string]any
		err := NewJSONExtractor().Extract(`{"a": 1`, &got)

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "whole-text", pe.Strategy)
	})

	t.Run("no strategy locates anything", func(t *testing.T) {
		var got map[string]any
		err := NewJSONExtractor(FencedBlockStrategy{}).Extract(`{"a":1}`, &got)

		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "none", pe.Strategy)
	})
}

func TestStrategyOrder(t *testing.T) {
	names := []string{}
	for _, s := range NewJSONExtractor().Strategies() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"fenced-block", "delimited-span", "whole-text"}, names)
}
