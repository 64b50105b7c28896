package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusOK, "Success"},
		{StatusGeneric, "Generic error"},
		{StatusInvalidParam, "Invalid parameter"},
		{StatusNotInit, "Shell not initialized"},
		{StatusAlreadyInit, "Shell already initialized"},
		{StatusNoMemory, "Memory allocation failed"},
		{StatusNotFound, "Item not found"},
		{StatusAlreadyExists, "Item already exists"},
		{StatusNoBackend, "No backend configured"},
		{StatusBufferFull, "Buffer is full"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.status.String())
	}
}

func TestStatusStringUnknown(t *testing.T) {
	assert.Equal(t, "Unknown error", Status(-1).String())
	assert.Equal(t, "Unknown error", Status(1000).String())
}

func TestStatusOK(t *testing.T) {
	assert.True(t, StatusOK.OK())
	assert.False(t, StatusGeneric.OK())
	assert.False(t, StatusNotFound.OK())
}
