package service

import (
	"net/url"
	"strings"
)

// statusDatetimeField is sent with a literal "+" in its UTC offset, which
// query parsing turns into a space. Senders sign the "+" form.
const statusDatetimeField = "statusDatetime"

// Canonicalize serializes query deterministically: keys sorted, values under
// the same key kept in their original order, form-encoded and joined by "&".
// query is never modified.
func Canonicalize(query url.Values) string {
	return normalizeStatusDatetime(query).Encode()
}

// normalizeStatusDatetime returns query with spaces in statusDatetime values
// replaced by "+". The result shares unchanged slices with query.
func normalizeStatusDatetime(query url.Values) url.Values {
	values, ok := query[statusDatetimeField]
	if !ok {
		return query
	}

	out := make(url.Values, len(query))
	for k, v := range query {
		out[k] = v
	}

	fixed := make([]string, len(values))
	for i, v := range values {
		fixed[i] = strings.ReplaceAll(v, " ", "+")
	}
	out[statusDatetimeField] = fixed

	return out
}
