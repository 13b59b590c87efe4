package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "identical strings", a: "compress", b: "compress", want: 0},
		{name: "one character difference", a: "compress", b: "compresss", want: 1},
		{name: "typo - transposition", a: "hash", b: "hsah", want: 2},
		{name: "completely different", a: "cat", b: "xyz123", want: 6},
		{name: "empty string a", a: "", b: "hash", want: 4},
		{name: "empty string b", a: "cat", b: "", want: 3},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "case insensitive", a: "CAT", b: "cat", want: 0},
		{name: "missing letter", a: "decompress", b: "decomress", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := levenshtein(tt.a, tt.b)
			require.Equal(t, tt.want, got)
		})
	}
}

func suggestGrammar() *Grammar {
	return MustGrammar(
		Descriptor{ID: "c", Verb: "cat", MinArgs: 1},
		Descriptor{ID: "h", Verb: "hash", MinArgs: 1},
		Descriptor{ID: "hp", Verb: "help"},
		Descriptor{ID: "z", Verb: "compress", MinArgs: 2},
		Descriptor{ID: "dz", Verb: "decompress", MinArgs: 2},
	)
}

func TestFindSimilarVerbs(t *testing.T) {
	g := suggestGrammar()

	tests := []struct {
		name       string
		grammar    *Grammar
		input      string
		maxResults int
		want       []string
	}{
		{name: "dropped letter", grammar: g, input: "compres", maxResults: 3, want: []string{"compress"}},
		{name: "transposition", grammar: g, input: "hsah", maxResults: 3, want: []string{"hash"}},
		{name: "sorted by distance", grammar: g, input: "cas", maxResults: 3, want: []string{"cat", "hash"}},
		{name: "limited results", grammar: g, input: "cas", maxResults: 1, want: []string{"cat"}},
		{name: "completely different returns nothing", grammar: g, input: "xyz123", maxResults: 3, want: []string{}},
		{name: "exact match is not suggested", grammar: g, input: "cat", maxResults: 3, want: []string{}},
		{name: "empty input returns nil", grammar: g, input: "", maxResults: 3, want: nil},
		{name: "nil grammar returns nil", grammar: nil, input: "cat", maxResults: 3, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindSimilarVerbs(tt.input, tt.grammar, tt.maxResults)

			if tt.want == nil {
				require.Nil(t, got)
			} else if len(tt.want) == 0 {
				require.Empty(t, got)
			} else {
				require.Equal(t, tt.want, got)
			}
		})
	}
}
