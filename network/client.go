// Package network holds the HTTP client used for release lookups.
package network

import (
	"net/http"
	"time"

	"github.com/vidstrip/vidstrip/constant"
)

// Client is shared by every outgoing request.
var Client = &http.Client{
	Timeout:   10 * time.Second,
	Transport: &userAgent{next: newTransport()},
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConnsPerHost = 2
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 5 * time.Second
	return t
}

// userAgent tags requests with the application name and version.
type userAgent struct {
	next http.RoundTripper
}

func (u *userAgent) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent())
	}
	return u.next.RoundTrip(req)
}

// UserAgent is the header value sent with every request.
func UserAgent() string {
	return constant.Vidstrip + "/" + constant.Version
}
