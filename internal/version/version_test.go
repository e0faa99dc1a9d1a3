package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	defer func(v, b, c string) { Version, BuildTime, GitCommit = v, b, c }(Version, BuildTime, GitCommit)

	Version, GitCommit = "1.2.3", "unknown"
	assert.Equal(t, "tf-editor 1.2.3", String())

	GitCommit, BuildTime = "0123456789abcdef", "2026-01-02T03:04:05Z"
	assert.Equal(t, "tf-editor 1.2.3 (0123456, built 2026-01-02T03:04:05Z)", String())
}
