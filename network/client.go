// Package network provides the shared HTTP client and the page fetcher every extractor goes through.
package network

import (
	"net/http"
	"time"

	"github.com/catchup-cli/catchup/key"
	"github.com/spf13/viper"
)

// NewClient returns a client with a tuned transport.
// With fingerprint set, HTTPS requests are dialed with a browser TLS fingerprint.
func NewClient(timeout time.Duration, fingerprint bool) *http.Client {
	var transport http.RoundTripper = newTransport()
	if fingerprint {
		transport = newFingerprintTransport()
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// FromConfig builds a client from the network.* settings.
func FromConfig() *http.Client {
	return NewClient(
		time.Duration(viper.GetInt(key.NetworkTimeout))*time.Second,
		viper.GetBool(key.NetworkTLSFingerprint),
	)
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 16
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}
