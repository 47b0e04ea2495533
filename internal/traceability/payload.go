// Package traceability builds and resolves the provenance QR codes printed
// on product labels. A QR payload is a URL back to the product detail page;
// scanned payloads arrive in several shapes depending on the scanner.
package traceability

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const productPathPrefix = "/product/"

var ErrBadPayload = errors.New("unrecognized qr payload")

// ProductPayload returns the QR payload for a product: an absolute URL when
// a public base URL is configured, otherwise a relative product path.
func ProductPayload(baseURL string, productID int64) string {
	path := fmt.Sprintf("%s%d", productPathPrefix, productID)
	if baseURL == "" {
		return path
	}
	return strings.TrimRight(baseURL, "/") + path
}

// ParsePayload resolves a scanned payload to a product id. It accepts a
// bare numeric id, a path beginning with "/product/", or a full URL whose
// last path segment is numeric.
func ParsePayload(payload string) (int64, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return 0, ErrBadPayload
	}

	if strings.HasPrefix(payload, productPathPrefix) {
		return parseID(strings.TrimPrefix(payload, productPathPrefix))
	}

	if id, err := parseID(payload); err == nil {
		return id, nil
	}

	u, err := url.Parse(payload)
	if err != nil || u.Scheme == "" {
		return 0, ErrBadPayload
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	return parseID(segments[len(segments)-1])
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrBadPayload
	}
	return id, nil
}
