// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package client

import (
	"bytes"
	"sync"

	log "github.com/sirupsen/logrus"
	"k8s.io/klog/v2"
)

// klogLogger only exists to hand klog a logger, output goes through the
// buffer callback.
var klogLogger klog.Logger

var redirectOnce sync.Once

// RedirectKlog sends client-go log output to the debug log instead of stderr.
func RedirectKlog() {
	redirectOnce.Do(func() {
		klog.SetLoggerWithOptions(klogLogger, klog.ContextualLogger(true), klog.WriteKlogBuffer(func(msg []byte) {
			log.Debugf("%s", bytes.TrimSpace(msg))
		}))
	})
}
