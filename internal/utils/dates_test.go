package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "10/05/2024", FormatDate("2024-05-10"))
	assert.Equal(t, "10/05/2024", FormatDate("2024-05-10T14:30:00"))
	assert.Equal(t, "10/05/2024", FormatDate("2024-05-10T14:30:00Z"))
	// display-only transform: unparseable input passes through unchanged
	assert.Equal(t, "ontem", FormatDate("ontem"))
	assert.Equal(t, "", FormatDate(""))
}
