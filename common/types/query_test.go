package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	offset, limit, err := ParsePagination(nil)
	require.NoError(t, err)
	require.Equal(t, uint64(0), offset)
	require.Equal(t, DefaultQueryLimit, limit)

	offset, limit, err = ParsePagination([]string{"5", "1000"})
	require.NoError(t, err)
	require.Equal(t, uint64(5), offset)
	require.Equal(t, 1000, limit)

	_, _, err = ParsePagination([]string{"0", "1001"})
	require.Error(t, err)

	_, _, err = ParsePagination([]string{"x"})
	require.Error(t, err)

	_, _, err = ParsePagination([]string{"0", "0"})
	require.Error(t, err)
}
