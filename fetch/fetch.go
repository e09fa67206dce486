// Package fetch retrieves token list documents over HTTP. It is separate from
// the root package so that consumers who only parse local documents do not
// depend on an HTTP client.
package fetch

import (
	"context"
	"fmt"
	"net/http"

	tokenlist "github.com/telcoin/token-list"
)

// Doer abstracts the executing client of HTTP requests.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TransportError describes a failure to retrieve a document over HTTP. It
// covers both transport-level failures and non-2xx responses; a non-2xx
// response is a transport failure here even when its body is valid JSON.
type TransportError struct {
	// StatusCode is the HTTP status of the response, or zero if the request
	// never produced one.
	StatusCode int
	// Err is the underlying cause, if any.
	Err error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("token list request failed with status %d", e.StatusCode)
	}

	return fmt.Sprintf("token list request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// List retrieves and decodes the token list document at the given URL using a
// single GET request. Transport failures and non-2xx statuses are reported as
// a *TransportError; a body that fails to decode is reported as the decode
// error unchanged. No retries are attempted and no timeout is imposed beyond
// the given context and client's own.
func List(ctx context.Context, client Doer, listURL string) (*tokenlist.TokenList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for fetching token list: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &TransportError{StatusCode: resp.StatusCode}
	}

	return tokenlist.Parse(resp.Body)
}
