package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppliesDefaults(t *testing.T) {
	s, err := Parse(strings.NewReader(`local_crate: harness_crate`))
	require.NoError(t, err)
	assert.Equal(t, "harness_crate", s.LocalCrate)
	assert.Equal(t, "info", s.LogLevel)
	assert.False(t, s.FailOnWarning)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("local_crate: c\ntypo_field: true"))
	require.Error(t, err)
}

func TestParseRejectsBadLogLevel(t *testing.T) {
	_, err := Parse(strings.NewReader("local_crate: c\nlog_level: verbose"))
	require.Error(t, err)
}

func TestParseFull(t *testing.T) {
	yaml := `
local_crate: harness_crate
log_level: debug
fail_on_warning: true
legacy_file: stubs.legacy
`
	s, err := Parse(strings.NewReader(yaml))
	require.NoError(t, err)
	assert.Equal(t, "harness_crate", s.LocalCrate)
	assert.Equal(t, "debug", s.LogLevel)
	assert.True(t, s.FailOnWarning)
	assert.Equal(t, "stubs.legacy", s.LegacyFile)
}
