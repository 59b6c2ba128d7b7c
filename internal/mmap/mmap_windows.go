//go:build windows

package mmap

import (
	"io"
	"os"
)

// Windows builds fall back to reading the file into memory. The local
// library store only needs Bytes(), so the behavior is identical.
func mmap(f *os.File, size int) ([]byte, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, err
	}
	return data, nil
}

func munmap(data []byte) error {
	return nil
}
