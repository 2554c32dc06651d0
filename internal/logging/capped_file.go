package logging

import (
	"os"
	"sync"
)

// cappedFile is a log sink that truncates and starts over once the file would
// exceed its cap. A slip session produces little log volume, so losing the
// oldest lines on rollover is acceptable and keeps the sink dependency-free.
type cappedFile struct {
	mu   sync.Mutex
	path string
	cap  int64
	f    *os.File
	size int64
}

func openCappedFile(path string, maxMB int) (*cappedFile, error) {
	if maxMB <= 0 {
		maxMB = 10
	}
	f, size, err := appendFile(path)
	if err != nil {
		return nil, err
	}
	return &cappedFile{path: path, cap: int64(maxMB) << 20, f: f, size: size}, nil
}

func (c *cappedFile) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.f == nil {
		f, size, err := appendFile(c.path)
		if err != nil {
			return 0, err
		}
		c.f, c.size = f, size
	}
	if c.size+int64(len(p)) > c.cap {
		if err := c.rollover(); err != nil {
			return 0, err
		}
	}
	n, err := c.f.Write(p)
	c.size += int64(n)
	return n, err
}

func (c *cappedFile) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.f == nil {
		return nil
	}
	err := c.f.Close()
	c.f = nil
	return err
}

func (c *cappedFile) rollover() error {
	if c.f != nil {
		_ = c.f.Close()
	}
	f, err := os.OpenFile(c.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	c.f, c.size = f, 0
	return nil
}

func appendFile(path string) (*os.File, int64, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, err
	}
	return f, info.Size(), nil
}
