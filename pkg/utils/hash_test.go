package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString(t *testing.T) {
	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", HashString("abc"))
}

func TestFingerprint(t *testing.T) {
	fp := Fingerprint("John.Doe@Example.com")

	assert.Len(t, fp, 16)
	assert.Equal(t, fp, Fingerprint("  john.doe@example.com "))
	assert.NotEqual(t, fp, Fingerprint("jane@example.com"))
	assert.NotContains(t, fp, "john")
}
