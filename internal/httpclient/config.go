package httpclient

import "time"

// HTTPClientConfig holds transport-level configuration for HTTPClient
type HTTPClientConfig struct {
	Timeout               time.Duration
	DialTimeout           time.Duration
	KeepAlive             time.Duration
	TLSHandshakeTimeout   time.Duration
	ExpectContinueTimeout time.Duration
	IdleConnTimeout       time.Duration
	MaxIdleConns          int
	MaxIdleConnsPerHost   int
	MaxConnsPerHost       int
	InsecureSkipVerify    bool
	FollowRedirects       bool
	MaxRedirects          int
	EnableHTTP2           bool
	UserAgent             string
	CustomHeaders         map[string]string
}

// DefaultHTTPClientConfig returns sensible defaults for API clients
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:               30 * time.Second,
		DialTimeout:           10 * time.Second,
		KeepAlive:             30 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		MaxConnsPerHost:       0,
		InsecureSkipVerify:    false,
		FollowRedirects:       true,
		MaxRedirects:          10,
		EnableHTTP2:           true,
		UserAgent:             "stalewatch/1.0",
		CustomHeaders:         map[string]string{},
	}
}
