package sl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	attr := Err(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "boom", attr.Value.String())

	assert.Equal(t, "", Err(nil).Value.String())
}

func TestSecret(t *testing.T) {
	assert.Equal(t, "****", Secret("key", "abcd").Value.String())
	assert.Equal(t, "ab***yz", Secret("key", "abcdefghxyz").Value.String())
}
