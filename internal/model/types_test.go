package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResult(t *testing.T) {
	r := NewResult(0.8, 0.2)
	assert.Equal(t, LabelAI, r.Label)
	require.NotNil(t, r.Confidence)
	assert.Equal(t, 0.8, *r.Confidence)

	r = NewResult(0.3, 0.7)
	assert.Equal(t, LabelHuman, r.Label)
	assert.Equal(t, 0.7, *r.Confidence)

	r = NewResult(0.5, 0.5)
	assert.Equal(t, LabelAI, r.Label, "ties go to AI")
}
