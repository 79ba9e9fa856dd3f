package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "NAVY BLUE", Normalize("  navy Blue "))
	assert.Equal(t, "", Normalize("   "))
}

func TestParseTokenList(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     []string
	}{
		{"comma separated", "white, navy ,camel", []string{"WHITE", "NAVY", "CAMEL"}},
		{"drops short and empty", "a, ,BLACK,,x", []string{"BLACK"}},
		{"newlines and period", "Olive\nCream, Burgundy.", []string{"OLIVE", "CREAM", "BURGUNDY"}},
		{"bullets", "- Gray\n- Tan", []string{"GRAY", "TAN"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTokenList(tt.response))
		})
	}
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"RED", "BLACK", "WHITE"}, Dedupe([]string{"RED", "BLACK", "RED", "WHITE", "BLACK"}))
	assert.Empty(t, Dedupe(nil))
}
