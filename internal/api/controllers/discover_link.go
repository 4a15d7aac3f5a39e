package controllers

import (
	"net/http"
	"net/url"
	"strconv"
)

// DiscoverLink builds the shareable /discover URL for a point, the same form
// printed on business QR codes. radius <= 0 leaves the server default.
func DiscoverLink(baseURL string, lat, lng float64, radius int, label string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	u.Path = "/discover"

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	if radius > 0 {
		q.Set("radius", strconv.Itoa(radius))
	}
	if label != "" {
		q.Set("label", label)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// requestBaseURL is the scheme and host the client used to reach us.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
