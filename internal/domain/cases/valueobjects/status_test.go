package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"pending", StatusPending},
		{"Pending", StatusPending},
		{"  RESOLVED  ", StatusResolved},
		{"in progress", StatusInProgress},
		{"In_Progress", StatusInProgress},
		{"IN_PROGRESS", StatusInProgress},
		{"Open", StatusOpen},
		{"closed", StatusClosed},
		{"escalated", Status("escalated")},
		{"", Status("")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeStatus(tt.input))
		})
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid(), s.String())
	}

	assert.False(t, Status("escalated").IsValid())
	assert.False(t, Status("").IsValid())
	assert.False(t, Status("IN PROGRESS").IsValid(), "validity check expects normalized input")
}
