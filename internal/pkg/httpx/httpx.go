package httpx

import (
	"context"
	"net/http"
)

// DefaultRetries is the fixed retry budget applied uniformly to every
// outbound provider call. No backoff between attempts.
const DefaultRetries = 2

// Do issues req through client, retrying transport-level failures up to
// retries additional times. Non-2xx responses are returned as-is: provider
// status handling belongs to the caller. The request must carry a context
// so a client timeout or cancellation stops the retry loop.
func Do(client *http.Client, req *http.Request, retries int) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt <= retries; attempt++ {
		resp, err = client.Do(req)
		if err == nil {
			return resp, nil
		}
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, ctxErr
		}
	}

	return nil, err
}

// NewGetRequest builds a GET request bound to ctx.
func NewGetRequest(ctx context.Context, url string) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
}
