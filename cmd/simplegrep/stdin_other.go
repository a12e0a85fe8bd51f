//go:build !unix

package main

// stdinHasData always reports false: piped input is not detected here
func stdinHasData() bool {
	return false
}
