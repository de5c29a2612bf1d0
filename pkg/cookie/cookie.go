package cookie

import (
	"net/http"
)

// Parse parses a raw Cookie request header value into a name/value map.
// Absent or empty input yields an empty map. Malformed pairs are skipped;
// when the same name appears more than once the first occurrence wins,
// matching how browsers order and servers read the Cookie header.
func Parse(header string) map[string]string {
	pairs := make(map[string]string)
	if header == "" {
		return pairs
	}

	// Delegate tokenization to net/http so quoting, whitespace and invalid
	// octets are handled exactly like a real request would be.
	r := http.Request{Header: http.Header{"Cookie": {header}}}
	for _, c := range r.Cookies() {
		if _, ok := pairs[c.Name]; ok {
			continue
		}
		pairs[c.Name] = c.Value
	}
	return pairs
}

// Serialize produces a Set-Cookie header value for the given name/value pair.
// Defaults are Path "/", HttpOnly and SameSite Lax; override via options.
// Returns an empty string if the name is not a valid cookie name.
func Serialize(name, value string, opts ...Option) string {
	options := applyOptions(defaultOptions(), opts)

	c := http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Expires:  options.Expires,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}

	return c.String()
}
