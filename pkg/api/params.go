package api

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/codeGROOVE-dev/workday/pkg/workday"
)

const (
	msgDays     = "days must be a positive integer"
	msgHours    = "hours must be a positive integer"
	msgDate     = "date must be ISO 8601 UTC ending with 'Z'"
	msgRequired = "at least one of 'days' or 'hours' must be provided"
)

// parseQuery validates the working-date query. It returns the request or the
// list of problems found.
func parseQuery(q url.Values) (workday.Request, []string) {
	var req workday.Request
	var issues []string

	if q.Has("days") {
		n, ok := positiveInt(q.Get("days"))
		if !ok {
			issues = append(issues, msgDays)
		}
		req.Days = n
	}
	if q.Has("hours") {
		n, ok := positiveInt(q.Get("hours"))
		if !ok {
			issues = append(issues, msgHours)
		}
		req.Hours = n
	}
	if q.Has("date") {
		req.Date = q.Get("date")
		if !strings.HasSuffix(req.Date, "Z") {
			issues = append(issues, msgDate)
		}
	}
	if len(issues) > 0 {
		return workday.Request{}, issues
	}

	if !q.Has("days") && !q.Has("hours") {
		return workday.Request{}, []string{msgRequired}
	}
	return req, nil
}

// positiveInt accepts base-10 digits with an optional sign, surrounding spaces
// allowed, and a value above zero. Exponent, hex and decimal forms are rejected.
func positiveInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
