package holidays

import (
	"encoding/json"
	"errors"

	"github.com/buger/jsonparser"
)

// errMalformed marks a body that is not JSON at all. That fails the fetch
// attempt; valid JSON of an unknown shape does not.
var errMalformed = errors.New("malformed holiday payload")

// dateKeys are tried in order on object entries.
var dateKeys = []string{"date", "iso", "day"}

// Parse extracts holiday dates from a JSON payload. Accepted shapes:
//
//	["2023-01-01", ...]
//	[{"date": "2023-01-01"}, {"iso": "..."}, {"day": "..."}, ...]
//	{"holidays": <either array above>}
//
// Any other valid JSON yields an empty set and no error.
func Parse(data []byte) (Set, error) {
	if !json.Valid(data) {
		return Set{}, errMalformed
	}

	root, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return Set{}, errMalformed
	}

	switch typ {
	case jsonparser.Array:
		return NewSet(collect(root)...), nil
	case jsonparser.Object:
		inner, innerType, _, err := jsonparser.Get(root, "holidays")
		if err == nil && innerType == jsonparser.Array {
			return NewSet(collect(inner)...), nil
		}
	default:
	}

	return Set{}, nil
}

func collect(arr []byte) []string {
	var dates []string
	//nolint:errcheck // entries that fail to decode are skipped
	jsonparser.ArrayEach(arr, func(value []byte, typ jsonparser.ValueType, _ int, _ error) {
		switch typ {
		case jsonparser.String:
			if s, err := jsonparser.ParseString(value); err == nil {
				dates = append(dates, s)
			}
		case jsonparser.Object:
			if s, ok := dateField(value); ok {
				dates = append(dates, s)
			}
		default:
		}
	})
	return dates
}

// dateField returns the first present, non-null date key of obj. A present key
// holding a non-string value ends the search.
func dateField(obj []byte) (string, bool) {
	for _, key := range dateKeys {
		v, typ, _, err := jsonparser.Get(obj, key)
		if err != nil || typ == jsonparser.Null {
			continue
		}
		if typ != jsonparser.String {
			return "", false
		}
		s, err := jsonparser.ParseString(v)
		return s, err == nil
	}
	return "", false
}
