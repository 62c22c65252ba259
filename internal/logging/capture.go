package logging

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// OutputCapture redirects stdout/stderr into annotated console lines. The
// redirection happens at the file descriptor level so C library output (GTK,
// WebKit) is captured too, not just Go writes.
type OutputCapture struct {
	goStdout *os.File // os.Stdout before capture
	goStderr *os.File

	// Dups of fds 1 and 2 taken before redirection; they still reach the
	// real console once the originals point at the pipes.
	realStdout *os.File
	realStderr *os.File

	stdoutRead  *os.File
	stdoutWrite *os.File
	stderrRead  *os.File
	stderrWrite *os.File

	logger   zerolog.Logger
	stopChan chan struct{}
	started  bool
}

func NewOutputCapture(logger zerolog.Logger) *OutputCapture {
	return &OutputCapture{
		goStdout: os.Stdout,
		goStderr: os.Stderr,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

func (c *OutputCapture) Start() error {
	if c.started {
		return nil
	}

	outFD, err := unix.Dup(1)
	if err != nil {
		return fmt.Errorf("dup stdout: %w", err)
	}
	errFD, err := unix.Dup(2)
	if err != nil {
		_ = unix.Close(outFD)
		return fmt.Errorf("dup stderr: %w", err)
	}
	c.realStdout = os.NewFile(uintptr(outFD), "stdout")
	c.realStderr = os.NewFile(uintptr(errFD), "stderr")

	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		c.closeSavedFDs()
		return err
	}
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		closePipe(stdoutR, "stdout read")
		closePipe(stdoutW, "stdout write")
		c.closeSavedFDs()
		return err
	}

	c.stdoutRead = stdoutR
	c.stdoutWrite = stdoutW
	c.stderrRead = stderrR
	c.stderrWrite = stderrW

	os.Stdout = stdoutW
	os.Stderr = stderrW

	// Redirect the file descriptors at syscall level for C code
	if err := unix.Dup3(int(stdoutW.Fd()), 1, 0); err != nil {
		c.logger.Warn().Err(err).Msg("failed to redirect stdout fd")
	}
	if err := unix.Dup3(int(stderrW.Fd()), 2, 0); err != nil {
		c.logger.Warn().Err(err).Msg("failed to redirect stderr fd")
	}

	go c.pipeToConsole(stdoutR, "STDOUT", c.realStdout)
	go c.pipeToConsole(stderrR, "STDERR", c.realStderr)

	c.started = true
	return nil
}

func (c *OutputCapture) Stop() {
	if !c.started {
		return
	}

	close(c.stopChan)

	if err := unix.Dup3(int(c.realStdout.Fd()), 1, 0); err != nil {
		c.logger.Warn().Err(err).Msg("failed to restore stdout fd")
	}
	if err := unix.Dup3(int(c.realStderr.Fd()), 2, 0); err != nil {
		c.logger.Warn().Err(err).Msg("failed to restore stderr fd")
	}

	os.Stdout = c.goStdout
	os.Stderr = c.goStderr

	closePipe(c.stdoutWrite, "stdout write")
	closePipe(c.stderrWrite, "stderr write")
	closePipe(c.stdoutRead, "stdout read")
	closePipe(c.stderrRead, "stderr read")
	c.closeSavedFDs()

	c.started = false
}

func (c *OutputCapture) pipeToConsole(r io.Reader, prefix string, target *os.File) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case <-c.stopChan:
			return
		default:
			line := scanner.Text()
			if line == "" {
				continue
			}
			// Lines carrying our own stream markers are re-captured output;
			// dropping them breaks any feedback loop.
			if strings.Contains(line, "[STDOUT]") || strings.Contains(line, "[STDERR]") {
				continue
			}
			timestamp := time.Now().Format("2006-01-02 15:04:05")
			logLine := fmt.Sprintf("[%s] INFO [%s] %s\n", timestamp, prefix, line)
			if _, err := target.WriteString(logLine); err != nil {
				return
			}
		}
	}
}

func (c *OutputCapture) closeSavedFDs() {
	if c.realStdout != nil {
		_ = c.realStdout.Close()
		c.realStdout = nil
	}
	if c.realStderr != nil {
		_ = c.realStderr.Close()
		c.realStderr = nil
	}
}

func closePipe(f *os.File, name string) {
	if f == nil {
		return
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close %s pipe: %v\n", name, err)
	}
}
