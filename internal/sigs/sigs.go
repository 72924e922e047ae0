// Package sigs keeps asynchronous signals the dispatcher has no use for
// from reaching the Go runtime's default handlers.
package sigs

import (
	"os"
	"os/signal"
	"sync"

	"golang.org/x/sys/unix"
)

// Disregarded lists the signals Disregard registers.
var Disregarded = []os.Signal{unix.SIGPIPE, unix.SIGCHLD}

var (
	once sync.Once
	sink chan os.Signal
)

// Disregard routes SIGPIPE and SIGCHLD into a channel that is never read.
// Unlike signal.Ignore this leaves the dispositions at SIG_DFL across exec,
// so hook processes start with the defaults. Safe to call more than once.
func Disregard() {
	once.Do(func() {
		sink = make(chan os.Signal, 1)
		signal.Notify(sink, Disregarded...)
	})
}
