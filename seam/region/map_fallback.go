//go:build !linux && !darwin

package region

import "os"

// mapFile reads the entire file when mmap support is not wired for the
// platform. One contiguous block either way.
func mapFile(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() error { return nil }, nil
}

// Advise is a no-op without a real mapping.
func (r *Region) Advise(Advice) error {
	return nil
}
