package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	require.Equal(t, "UA Chain Release: "+NodeVersion+";", describe())

	GitCommit = "abc123"
	defer func() { GitCommit = "" }()
	require.Equal(t, "UA Chain Release: "+NodeVersion+"; UA Chain Commit: abc123;", describe())
}
