//go:build unix

package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
)

// stdinHasData reports whether data is waiting on standard input without
// blocking. An interactive terminal never counts as piped input.
func stdinHasData() bool {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) {
		return false
	}

	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil || n == 0 {
		return false
	}
	return fds[0].Revents&(unix.POLLIN|unix.POLLHUP) != 0
}
