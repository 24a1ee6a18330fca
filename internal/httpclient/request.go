package httpclient

import "context"

// HTTPRequest describes a single outbound request. Body is held as bytes
// rather than a reader so the retry handler can replay the request: a reader
// consumed by the first attempt would leave every retry with an empty body.
type HTTPRequest struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
	Context context.Context
}

// HTTPResponse holds the fully-read result of a request
type HTTPResponse struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// IsSuccess reports whether the response carries a 2xx status
func (r *HTTPResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
