package odds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuoted(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2.5", 2.5},
		{" 1.01 ", 1.01},
		{"5/2", 3.5},
		{"1/4", 1.25},
		{"+150", 2.5},
		{"-200", 1.5},
		{"+100", 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseQuoted(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseQuotedRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "abc", "5/0", "2.5.1", "+-150"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseQuoted(in)
			assert.Error(t, err)
		})
	}
}
