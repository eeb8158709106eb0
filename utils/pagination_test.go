package utils

import (
	"testing"

	"github.com/sonomandeep/Moon/config"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	p := ParsePagination("5", "3")
	require.Equal(t, 5, p.Limit)
	require.Equal(t, 3, p.Skip)
}

func TestParsePaginationDefaults(t *testing.T) {
	p := ParsePagination("", "")
	require.Equal(t, config.DefaultLimit, p.Limit)
	require.Equal(t, config.DefaultSkip, p.Skip)
}

func TestParsePaginationBadInputFallsBack(t *testing.T) {
	// Non-numeric input never fails the request, it just gets the defaults.
	p := ParsePagination("abc", "x3")
	require.Equal(t, config.DefaultLimit, p.Limit)
	require.Equal(t, config.DefaultSkip, p.Skip)
}

func TestParsePaginationZeroLimitFallsBack(t *testing.T) {
	p := ParsePagination("0", "0")
	require.Equal(t, config.DefaultLimit, p.Limit)
	require.Equal(t, config.DefaultSkip, p.Skip)
}
