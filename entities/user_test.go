package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessRateZeroScans(t *testing.T) {
	u := User{TotalScans: 0, SuccessfulDetections: 0}
	assert.Equal(t, 0.0, u.SuccessRate())
}

func TestSuccessRate(t *testing.T) {
	u := User{TotalScans: 10, SuccessfulDetections: 7}
	assert.InDelta(t, 0.7, u.SuccessRate(), 1e-9)
}
