package tmdb

import (
	"errors"
	"net/http"
	"time"
)

// Transport retries replayable requests (GET/HEAD without a body) on
// transport errors, 429 and 5xx. RetryMax excludes the first attempt.
type Transport struct {
	Base      http.RoundTripper
	UserAgent string
	RetryMax  int
	Backoff   time.Duration
}

func NewTransport(base http.RoundTripper, userAgent string, retryMax int) *Transport {
	return &Transport{
		Base:      base,
		UserAgent: userAgent,
		RetryMax:  retryMax,
		Backoff:   250 * time.Millisecond,
	}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	if t.Base == nil {
		return nil, errors.New("nil base transport")
	}

	canRetry := (req.Method == http.MethodGet || req.Method == http.MethodHead) && req.Body == nil
	max := t.RetryMax
	if max < 0 || !canRetry {
		max = 0
	}

	var lastErr error
	for attempt := 0; attempt <= max; attempt++ {
		if attempt > 0 {
			if err := t.wait(req, attempt); err != nil {
				return nil, err
			}
		}

		r := req.Clone(req.Context())
		if t.UserAgent != "" && r.Header.Get("User-Agent") == "" {
			r.Header.Set("User-Agent", t.UserAgent)
		}

		resp, err := t.Base.RoundTrip(r)
		if err == nil {
			if !retryableStatus(resp.StatusCode) || attempt == max {
				return resp, nil
			}
			resp.Body.Close()
			lastErr = &APIError{StatusCode: resp.StatusCode}
			continue
		}
		lastErr = err
		if req.Context().Err() != nil {
			return nil, lastErr
		}
	}
	return nil, lastErr
}

func (t *Transport) wait(req *http.Request, attempt int) error {
	if t.Backoff <= 0 {
		return req.Context().Err()
	}
	timer := time.NewTimer(t.Backoff * time.Duration(attempt))
	defer timer.Stop()
	select {
	case <-req.Context().Done():
		return req.Context().Err()
	case <-timer.C:
		return nil
	}
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}
