// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package util

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testBackoff = Backoff{
	Start:   time.Millisecond,
	Max:     2 * time.Millisecond,
	Factor:  2,
	Timeout: 50 * time.Millisecond,
}

// TestRetryWithBackoff tests the retry outcomes
// GIVEN functors that succeed late, fail fast, or never succeed
//
//	WHEN I call RetryWithBackoff
//	THEN the functor is retried only while it can still succeed
func TestRetryWithBackoff(t *testing.T) {
	asserts := assert.New(t)

	calls := 0
	ret, err := RetryWithBackoff(testBackoff, func() (string, bool, error) {
		calls++
		if calls < 3 {
			return "", false, errors.New("not yet")
		}
		return "done", false, nil
	})
	asserts.NoError(err)
	asserts.Equal("done", ret)
	asserts.Equal(3, calls)

	calls = 0
	_, err = RetryWithBackoff(testBackoff, func() (int, bool, error) {
		calls++
		return 0, true, errors.New("fatal")
	})
	asserts.EqualError(err, "fatal")
	asserts.Equal(1, calls)

	calls = 0
	_, err = RetryWithBackoff(testBackoff, func() (int, bool, error) {
		calls++
		return 0, false, errors.New("never")
	})
	asserts.EqualError(err, "never")
	asserts.Greater(calls, 1)
}
