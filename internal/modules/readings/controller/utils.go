package controller

import (
	"errors"
	"net/http"
	"strconv"
)

const (
	defaultWindowHours = 24
	defaultListLimit   = 500
	maxListLimit       = 1000
)

// parseWindowQuery returns the lookback window in hours and the optional
// location filter ("" means all locations).
func parseWindowQuery(r *http.Request) (hours int, location string, err error) {
	q := r.URL.Query()

	hours = defaultWindowHours
	if s := q.Get("hours"); s != "" {
		n, convErr := strconv.Atoi(s)
		if convErr != nil {
			return 0, "", errors.New("invalid 'hours' (expected integer)")
		}
		if n <= 0 {
			return 0, "", errors.New("'hours' must be > 0")
		}
		hours = n
	}

	return hours, q.Get("location"), nil
}

func parseListQuery(r *http.Request) (hours int, location string, limit int, err error) {
	hours, location, err = parseWindowQuery(r)
	if err != nil {
		return 0, "", 0, err
	}

	limit = defaultListLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, convErr := strconv.Atoi(s)
		if convErr != nil {
			return 0, "", 0, errors.New("invalid 'limit' (expected integer)")
		}
		if n <= 0 {
			return 0, "", 0, errors.New("'limit' must be > 0")
		}
		if n > maxListLimit {
			return 0, "", 0, errors.New("'limit' must be <= 1000")
		}
		limit = n
	}

	return hours, location, limit, nil
}
