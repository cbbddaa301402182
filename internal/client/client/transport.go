package client

import (
	"net"
	"net/http"
	"time"
)

const (
	dialTimeout         = 5 * time.Second
	maxIdleConnsPerHost = 10
	idleConnTimeout     = 90 * time.Second
)

// authenticatedTransport adds the bearer token to every outgoing request.
type authenticatedTransport struct {
	underlying http.RoundTripper
	tokens     TokenSource
}

func (t *authenticatedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.tokens == nil {
		return t.underlying.RoundTrip(req)
	}
	token := t.tokens.Token()
	if token == "" || req.Header.Get("Authorization") != "" {
		return t.underlying.RoundTrip(req)
	}
	// RoundTrippers must not modify the caller's request.
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "Bearer "+token)
	return t.underlying.RoundTrip(r)
}

func newTransport() *http.Transport {
	dialer := &net.Dialer{Timeout: dialTimeout, KeepAlive: 30 * time.Second}
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		TLSHandshakeTimeout: dialTimeout,
	}
}
