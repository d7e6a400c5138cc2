package football

import "fmt"

// AuthOrRateLimitError is returned for HTTP 403. football-data answers 403
// both for a bad token and for a free-tier plan hitting its quota.
type AuthOrRateLimitError struct {
	Path string
}

func (e *AuthOrRateLimitError) Error() string {
	return fmt.Sprintf("football-data %s: access forbidden (403), check FOOTBALL_DATA_API_KEY or wait for the rate limit to reset (free tier allows 10 requests per minute)", e.Path)
}

type RateLimitError struct {
	Path string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("football-data %s: rate limit exceeded (429), try again later", e.Path)
}

// UpstreamError covers every other non-2xx answer and bodies that are not JSON.
type UpstreamError struct {
	Path       string
	StatusCode int
	Status     string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("football-data %s: %d %s: %v", e.Path, e.StatusCode, e.Status, e.Err)
	}
	return fmt.Sprintf("football-data %s: %d %s", e.Path, e.StatusCode, e.Status)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("football-data %s: request failed: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
