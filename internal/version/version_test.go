package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestShort tests the Short function.
func TestShort(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Version, Short())
}

// TestFull tests the Full function.
func TestFull(t *testing.T) {
	t.Parallel()

	expected := "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
	assert.Equal(t, expected, Full())
}

// TestBuildMetadataDefaults tests that the stamped variables carry usable defaults.
func TestBuildMetadataDefaults(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, Version)
	assert.NotEmpty(t, Commit)
	assert.NotEmpty(t, BuildTime)

	// The default version must look like a semantic version.
	assert.Contains(t, Version, ".")
	assert.NotContains(t, Version, " ")
}
