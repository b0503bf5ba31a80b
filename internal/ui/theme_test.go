package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "[----------]", ProgressBar(0, 500, 10))
	assert.Equal(t, "[#####-----]", ProgressBar(250, 500, 10))
	assert.Equal(t, "[##########]", ProgressBar(900, 500, 10))
	assert.Equal(t, "[---]", ProgressBar(-5, 0, 1))
}

func TestCents(t *testing.T) {
	assert.Equal(t, "$25.00", Cents(2500))
	assert.Equal(t, "$0.05", Cents(5))
}
