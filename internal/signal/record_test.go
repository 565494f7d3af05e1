package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name   string
		record string
		want   float64
		wantOK bool
	}{
		{"perfect season", "10W-0L-0D", 1.0, true},
		{"winless season", "0W-10L-0D", 0.0, true},
		{"malformed", "abc", Neutral, false},
		{"empty", "", Neutral, true},
		{"with draws", "15W-5L-3D", (15 + 1.5) / 23, true},
		{"no draw segment", "12W-8L", 12.0 / 20, true},
		{"zero games", "0W-0L-0D", Neutral, true},
		{"negative wins rejected", "-3W-5L-0D", Neutral, false},
		{"trailing garbage", "10W-0L-0Dx", Neutral, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRecord(tt.record)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
