package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi float32
		want      float32
	}{
		{"inside", 0.5, -1, 1, 0.5},
		{"below", -3, -1, 1, -1},
		{"above", 3, -1, 1, 1},
		{"pitch_limit", 100, -HalfPi, HalfPi, HalfPi},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Clamp(c.v, c.lo, c.hi))
		})
	}
}

func TestApproxEqual(t *testing.T) {
	assert.True(t, ApproxEqual(-45, -45.000001))
	assert.False(t, ApproxEqual(-45, -45.1))
}
