package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

const logFileName = "dimmer.log"

// LogRotator is an io.Writer over dimmer.log that rotates the file when it
// would exceed maxSize. Rotated files get a timestamp suffix, optionally
// gzipped, and old ones are pruned by count and age.
type LogRotator struct {
	mu         sync.Mutex
	dir        string
	maxSize    int64
	maxAge     time.Duration
	maxBackups int
	compress   bool

	file *os.File
	size int64
}

func NewLogRotator(dir string, maxSizeMB, maxBackups, maxAgeDays int, compress bool) (*LogRotator, error) {
	r := &LogRotator{
		dir:        dir,
		maxSize:    int64(maxSizeMB) << 20,
		maxAge:     time.Duration(maxAgeDays) * 24 * time.Hour,
		maxBackups: maxBackups,
		compress:   compress,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) open() error {
	path := filepath.Join(r.dir, logFileName)

	r.size = 0
	if info, err := os.Stat(path); err == nil {
		r.size = info.Size()
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	r.file = f
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}

	if r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if r.file != nil {
		_ = r.file.Close()
		r.file = nil
	}

	current := filepath.Join(r.dir, logFileName)
	backup := current + "." + time.Now().Format("2006-01-02-15-04-05")
	if err := os.Rename(current, backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}

	if r.compress {
		if err := gzipFile(backup); err == nil {
			_ = os.Remove(backup)
		} else {
			fmt.Fprintf(os.Stderr, "warning: compressing %s: %v\n", backup, err)
		}
	}

	r.prune()
	return r.open()
}

func gzipFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		return err
	}
	return zw.Close()
}

// prune removes rotated files past maxAge, then the oldest ones past
// maxBackups. Errors here are not worth failing a write over.
func (r *LogRotator) prune() {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return
	}

	cutoff := time.Now().Add(-r.maxAge)
	var backups []os.FileInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), logFileName+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if r.maxAge > 0 && info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(r.dir, e.Name()))
			continue
		}
		backups = append(backups, info)
	}

	if r.maxBackups <= 0 || len(backups) <= r.maxBackups {
		return
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].ModTime().Before(backups[j].ModTime())
	})
	for _, info := range backups[:len(backups)-r.maxBackups] {
		_ = os.Remove(filepath.Join(r.dir, info.Name()))
	}
}

func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
