package util

import (
	"fmt"
	"net/url"
)

// ResolveURL joins ref onto base the way a browser resolves a link: an
// absolute path replaces the base path, a relative one is appended, and a
// full or scheme-relative URL replaces the host as well.
func ResolveURL(base, ref string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", ref, err)
	}
	return baseURL.ResolveReference(refURL).String(), nil
}
