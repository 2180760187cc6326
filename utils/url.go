package utils

import (
	"net/url"
)

// ResolveURL makes href absolute against baseURL, the way a browser reports link targets.
// Unparseable input is returned unchanged.
func ResolveURL(baseURL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}

	parsedBase, err := url.Parse(baseURL)
	if err != nil {
		return href
	}

	return parsedBase.ResolveReference(ref).String()
}

// CacheKey builds a stable cache key for a profile URL, ignoring fragments
func CacheKey(prefix, rawURL string) string {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return prefix + ":" + rawURL
	}
	parsedURL.Fragment = ""
	return prefix + ":" + parsedURL.String()
}
