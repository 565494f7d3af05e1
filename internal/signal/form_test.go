package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseForm(t *testing.T) {
	tests := []struct {
		name   string
		form   string
		want   float64
		wantOK bool
	}{
		{"all wins", "WWWWW", 1.0, true},
		{"all losses", "LLLLL", 0.0, true},
		{"empty", "", Neutral, true},
		{"mixed", "WWLWD", (3 + 0.5) / 5, true},
		{"lowercase", "wwlwd", (3 + 0.5) / 5, true},
		{"all draws", "DDD", 0.5, true},
		{"unrecognized skipped", "W?X-L", 0.5, true},
		{"all unrecognized", "???", Neutral, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseForm(tt.form)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
