package meeting

import (
	"strconv"
	"strings"
)

const RequestCodePrefix = "MTG-"

// RequestCode is the human readable identifier, e.g. "MTG-42". The number
// comes from a database sequence so concurrent creates never share one.
type RequestCode string

func NewRequestCode(n int64) RequestCode {
	return RequestCode(RequestCodePrefix + strconv.FormatInt(n, 10))
}

func ParseRequestCode(s string) (RequestCode, error) {
	rest, ok := strings.CutPrefix(s, RequestCodePrefix)
	if !ok || rest == "" {
		return "", ErrInvalidRequestCode
	}
	n, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || n <= 0 {
		return "", ErrInvalidRequestCode
	}
	return RequestCode(s), nil
}

func (c RequestCode) String() string { return string(c) }
