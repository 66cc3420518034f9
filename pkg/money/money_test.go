package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "already rounded", in: 540, want: 540},
		{name: "float noise", in: 1.6 * 2 * 3, want: 9.6},
		{name: "half up", in: 62.125, want: 62.13},
		{name: "truncate", in: 62.1238, want: 62.12},
		{name: "negative", in: -1.234, want: -1.23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Round2(tt.in), 1e-9)
		})
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.3, Sum(0.1, 0.2))
	assert.Equal(t, 549.6, Sum(540, 9.6))
	assert.Equal(t, 0.0, Sum())
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(0.1+0.2, 0.3))
	assert.False(t, Equal(10.00, 10.01))
}
