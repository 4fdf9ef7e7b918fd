//go:build !unix

package system

import "os"

// RedirectStdIO replaces os.Stdout and os.Stderr with the file at path.
// Runtime panic output is not captured on these platforms.
func RedirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
