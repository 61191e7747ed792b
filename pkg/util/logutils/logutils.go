// Copyright (c) 2024, 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package logutils

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/oracle-cne/components-versions/pkg/util"
)

// Waiter defines a function to wait for and a message
// to display while waiting.
type Waiter struct {
	WaitFunction func() error
	Message      string
	Error        error
	done         bool
	mutex        sync.RWMutex
}

// Info is a wrapper around log.Info()
func Info(s string) {
	log.Info(s)
}

// Debug is a wrapper around log.Debug()
func Debug(s string) {
	log.Debug(s)
}

// pollInterval is how often the status of a running waiter is refreshed
var pollInterval = 250 * time.Millisecond

// terminal is where cursor movement is written.  Log messages go to the
// same place.
var terminal io.Writer = os.Stderr

var colorReset = "\x1b[0m"
var colorYellow = "\x1b[33m"
var colorGreen = "\x1b[32m"

var clearLine = "\x1b[K"

var waitStrings = []string{
	colorYellow + "waiting",
	colorYellow + "waiting.",
	colorYellow + "waiting..",
	colorYellow + "waiting...",
	colorYellow + "waiting ..",
	colorYellow + "waiting  .",
}

func waitString(msg string, iter int) string {
	idx := iter % len(waitStrings)
	return fmt.Sprintf("%s: %s%s%s", msg, waitStrings[idx], colorReset, clearLine)
}

func waitWithStatus(waiter *Waiter) {
	err := waiter.WaitFunction()

	waiter.mutex.Lock()
	waiter.done = true
	waiter.Error = err
	waiter.mutex.Unlock()
}

func (w *Waiter) isDone() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.done
}

// shouldBackup determines if WaitForSerial should back up lines each loop.
// Backing up only makes sense when a terminal shows the messages.
func shouldBackup(level log.Level) bool {
	if log.GetLevel() < level {
		return false
	}
	f, ok := terminal.(*os.File)
	if !ok {
		return false
	}
	isTTY, err := util.FileIsTTY(f)
	return err == nil && isTTY
}

// backup moves the cursor up n lines
//
// ^[[%dA is the VT-100 escape code to move the
// cursor up %d lines.  In GO, ^[ is \x1b
func backup(n int) {
	fmt.Fprintf(terminal, "\x1b[%dA", n)
}

// printDone prints a message for completed jobs
// formatted based on if it was successful or not.
func printDone(logFn func(string), w *Waiter) {
	if w.Error != nil {
		log.Errorf("%s: %s%s", w.Message, w.Error, clearLine)
	} else {
		logFn(fmt.Sprintf("%s: %s%s%s%s", w.Message, colorGreen, "ok", colorReset, clearLine))
	}
}

// WaitForSerial runs a series of functors in serial, waiting for
// each to complete to before starting the next one.  It pretty-prints
// a log message for each while it runs.  Returns true if an Error has
// occurred for any of the waiters.
func WaitForSerial(logFn func(string), level log.Level, waiters []*Waiter) bool {
	doBackup := shouldBackup(level)

	haveError := false
	for _, w := range waiters {
		go waitWithStatus(w)

		for loops := 0; !w.isDone(); loops++ {
			logFn(waitString(w.Message, loops))
			if doBackup {
				backup(1)
			}
			time.Sleep(pollInterval)
		}

		printDone(logFn, w)
		if w.Error != nil {
			haveError = true
		}
	}

	return haveError
}
