package searchconfig

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"
)

const (
	maxRetryAttempts = 3
	retryBaseDelay   = 250 * time.Millisecond
	retryMaxDelay    = 2 * time.Second
	retryJitterMax   = 200 * time.Millisecond
)

func isRetryableStatus(status int) bool {
	if status == http.StatusTooManyRequests || status == http.StatusRequestTimeout {
		return true
	}
	return status >= http.StatusInternalServerError
}

func isRetryableRequestError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNRESET, syscall.ECONNREFUSED, syscall.ENETUNREACH, syscall.EHOSTUNREACH:
			return true
		}
	}
	return false
}

func waitForBackoff(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func retryDelayForAttempt(attempt int, randInt63 func(n int64) int64) time.Duration {
	delay := retryBaseDelay
	for i := 1; i < attempt && delay < retryMaxDelay; i++ {
		delay *= 2
	}
	if randInt63 != nil {
		delay += time.Duration(randInt63(int64(retryJitterMax)))
	}
	return min(delay, retryMaxDelay)
}

// doWithRetry retries req on transient failures. req must have no body.
func doWithRetry(
	ctx context.Context,
	client *http.Client,
	req *http.Request,
	sleep func(ctx context.Context, d time.Duration) error,
	randInt63 func(n int64) int64,
) (*http.Response, error) {
	for attempt := 1; attempt <= maxRetryAttempts; attempt++ {
		resp, err := client.Do(req)
		if err != nil {
			if !isRetryableRequestError(err) || attempt == maxRetryAttempts {
				return nil, err
			}
		} else {
			if !isRetryableStatus(resp.StatusCode) || attempt == maxRetryAttempts {
				return resp, nil
			}
			_ = resp.Body.Close()
		}
		if waitErr := sleep(ctx, retryDelayForAttempt(attempt, randInt63)); waitErr != nil {
			return nil, waitErr
		}
	}
	return nil, fmt.Errorf("request failed after %d attempts", maxRetryAttempts)
}
