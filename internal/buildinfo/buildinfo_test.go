package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	old := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = old[0], old[1], old[2] })

	Version, Commit, Date = "v1.0.0", "abc123", "2024-01-01"
	s := String()
	assert.Contains(t, s, "version: v1.0.0")
	assert.Contains(t, s, "commit: abc123")
	assert.Contains(t, s, "built: 2024-01-01")
	assert.Contains(t, Template(), "{{.Name}} version v1.0.0")
}
