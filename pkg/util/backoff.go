// Copyright (c) 2024, 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package util

import (
	"time"
)

// RetryFunc is called until it succeeds.  Returning true as the second
// value along with an error stops any further attempts.
type RetryFunc[T any] func() (T, bool, error)

// Backoff describes how long to wait between attempts.
type Backoff struct {
	// Start is the first duration to wait
	Start time.Duration

	// Max is the longest duration to wait
	Max time.Duration

	// Factor multiplies the wait after each attempt
	Factor int64

	// Timeout is the last time to start an attempt.  A slow attempt can
	// make the total time longer than this.
	Timeout time.Duration
}

// DefaultBackoff is used by ExponentialRetry
var DefaultBackoff = Backoff{
	Start:   10 * time.Millisecond,
	Max:     time.Second,
	Factor:  2,
	Timeout: 10 * time.Second,
}

// RetryWithBackoff executes a functor until it either succeeds, fails in a
// non-recoverable way, or the timeout of the backoff is reached.  The last
// result and error are returned.
func RetryWithBackoff[T any](b Backoff, ftor RetryFunc[T]) (T, error) {
	begin := time.Now()
	wait := b.Start
	for {
		ret, failFast, err := ftor()
		if err == nil || failFast {
			return ret, err
		}
		if time.Since(begin)+wait >= b.Timeout {
			return ret, err
		}

		time.Sleep(wait)
		wait = time.Duration(int64(wait) * b.Factor)
		if wait > b.Max {
			wait = b.Max
		}
	}
}

// ExponentialRetry executes a functor with the default backoff.
func ExponentialRetry[T any](ftor RetryFunc[T]) (T, error) {
	return RetryWithBackoff(DefaultBackoff, ftor)
}
