package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	var s Summary
	assert.True(t, s.AllSucceeded(), "empty summary succeeds trivially")
	assert.Equal(t, "0/0", s.String())

	s.Record(true)
	s.Record(false)
	s.Record(true)

	assert.Equal(t, 2, s.Succeeded)
	assert.Equal(t, 3, s.Total)
	assert.False(t, s.AllSucceeded())
	assert.Equal(t, "2/3", s.String())
}
