package adapter

import (
	"fmt"
	"net/url"
	"strings"
)

// cleanPath trims surrounding slashes and rejects empty segments.
func cleanPath(p string) (string, error) {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == "" {
			return "", fmt.Errorf("%w: %q has an empty segment", ErrInvalidPath, p)
		}
	}
	return p, nil
}

// splitDocumentPath splits "a/b/c/d" into the collection path "a/b/c" and the
// document ID "d".
func splitDocumentPath(p string) (collectionPath, docID string, err error) {
	p, err = cleanPath(p)
	if err != nil {
		return "", "", err
	}

	i := strings.LastIndex(p, "/")
	if i < 0 {
		return "", "", fmt.Errorf("%w: %q is not a document path", ErrInvalidPath, p)
	}
	return p[:i], p[i+1:], nil
}

// escapePath escapes every segment of p for use in a URL path.
func escapePath(p string) string {
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}
