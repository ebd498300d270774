//go:build linux || darwin

package region

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// mapFile maps the file at path read-only and returns its contents with a
// cleanup function that unmaps them.
func mapFile(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close() // safe before return; mapping keeps pages alive

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, func() error { return nil }, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, nil, fmt.Errorf("region: file too large to map (%d bytes)", size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, cleanup, nil
}

// Advise hints the kernel about the access pattern ahead. A no-op on a
// zero-length or closed region.
func (r *Region) Advise(adv Advice) error {
	if len(r.data) == 0 {
		return nil
	}
	flag := unix.MADV_NORMAL
	switch adv {
	case AdviseSequential:
		flag = unix.MADV_SEQUENTIAL
	case AdviseRandom:
		flag = unix.MADV_RANDOM
	case AdviseWillNeed:
		flag = unix.MADV_WILLNEED
	}
	return unix.Madvise(r.data, flag)
}
