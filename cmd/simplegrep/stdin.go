package main

import (
	"io"
	"os"
)

// stageStdin copies r into a temporary file so it can be searched like any
// other file. cleanup removes the file and its directory.
func stageStdin(r io.Reader) (path string, cleanup func(), err error) {
	dir, err := os.MkdirTemp("", "simplegrep-")
	if err != nil {
		return "", nil, err
	}
	cleanup = func() { _ = os.RemoveAll(dir) }

	f, err := os.CreateTemp(dir, "*.tmp")
	if err != nil {
		cleanup()
		return "", nil, err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		cleanup()
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, err
	}

	return f.Name(), cleanup, nil
}
