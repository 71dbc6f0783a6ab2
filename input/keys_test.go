package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyString(t *testing.T) {
	assert.Equal(t, "W", KeyW.String())
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "Key(32)", Key(32).String())
}
