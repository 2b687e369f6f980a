package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	defer SetLanguage(Language().String())

	SetLanguage("en-US")
	assert.Equal("stack full", From("stack full"))
	assert.Equal("bad opcode 0x1234", From("bad opcode 0x%04x", 0x1234))
}

func TestSetLanguage_Default(t *testing.T) {
	assert := assert.New(t)

	defer SetLanguage(Language().String())

	SetLanguage()
	assert.NotNil(printer)
	assert.Equal("key 16 invalid", From("key %d invalid", 16))
}
