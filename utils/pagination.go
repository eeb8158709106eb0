package utils

import (
	"strconv"

	"github.com/sonomandeep/Moon/config"
)

type Pagination struct {
	Limit int
	Skip  int
}

// ParsePagination derives bounded limit/skip values from untrusted query
// input. Non-numeric or zero input silently falls back to the defaults;
// bad pagination parameters never fail a request.
func ParsePagination(limitRaw, skipRaw string) Pagination {
	limit, err := strconv.Atoi(limitRaw)
	if err != nil || limit == 0 {
		limit = config.DefaultLimit
	}

	skip, err := strconv.Atoi(skipRaw)
	if err != nil || skip == 0 {
		skip = config.DefaultSkip
	}

	return Pagination{Limit: limit, Skip: skip}
}
