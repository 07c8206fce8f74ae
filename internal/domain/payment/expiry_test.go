package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeExpiry(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"12/30", time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"02/28", time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC)}, // leap year
		{"02/29", time.Date(2029, 2, 28, 0, 0, 0, 0, time.UTC)},
		{"01/27", time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeExpiry(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeExpiryRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"", "13/30", "2030-12", "12-30", "1/30x"} {
		t.Run(input, func(t *testing.T) {
			_, err := NormalizeExpiry(input)
			assert.Error(t, err)
		})
	}
}
