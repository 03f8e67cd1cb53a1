package network

// Some CDNs fingerprint the TLS ClientHello and reject Go's default one. The
// fingerprint transport dials HTTPS with utls mimicking Chrome 120, prefers
// HTTP/2 (what Chrome negotiates with modern CDNs) and falls back to an
// HTTP/1.1-only dial when the h2 round trip fails.

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/catchup-cli/catchup/log"
	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const dialTimeout = 30 * time.Second

type fingerprintTransport struct {
	plain http.RoundTripper
	h2    *http2.Transport
	h1    *http.Transport
}

func newFingerprintTransport() *fingerprintTransport {
	return &fingerprintTransport{
		plain: newTransport(),
		h2: &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialFingerprint(ctx, network, addr, nil)
			},
		},
		h1: &http.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialFingerprint(ctx, network, addr, []string{"http/1.1"})
			},
			MaxIdleConnsPerHost: 16,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

// RoundTrip implements http.RoundTripper.
func (t *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.plain.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	// A consumed body without GetBody cannot be replayed.
	if req.Body != nil && req.GetBody == nil {
		return nil, err
	}

	log.Debugf("h2 round trip to %s failed, retrying over http/1.1: %v", req.URL.Host, err)
	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, bodyErr
		}
		retry.Body = body
	}
	return t.h1.RoundTrip(retry)
}

// dialFingerprint opens a TLS connection with Chrome's ClientHello.
// A non-empty protos list restricts ALPN, used to force HTTP/1.1.
func dialFingerprint(ctx context.Context, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.Handshake(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
