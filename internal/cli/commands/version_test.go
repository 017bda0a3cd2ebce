package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3", "2026-08-01", "abc1234")

	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "fgbscope v1.2.3")
	assert.Contains(t, out.String(), "2026-08-01")
	assert.Contains(t, out.String(), "abc1234")
}
