// Package capture spools standard input into an anonymous temporary file so
// that every dispatched hook can read the same bytes from offset zero.
//
// The backing file is unlinked immediately after creation: no name refers
// to it, nothing needs cleaning up if the process dies, and the space is
// reclaimed when the last descriptor closes. Input size is bounded only by
// the temporary filesystem.
package capture

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/term"

	"github.com/xdg/githooks/internal/clog"
)

// chunkSize is the size of each read from the source stream.
const chunkSize = 32 * 1024

// Input is captured standard input. It is written once by Capture and is
// read-only afterwards.
type Input struct {
	f    *os.File
	size int64
}

// Capture reads r to exhaustion into a new unlinked temporary file and
// returns it positioned at offset zero. Empty input is valid.
func Capture(r io.Reader) (*Input, error) {
	f, err := os.CreateTemp("", "git-hooks-stdin.*")
	if err != nil {
		return nil, fmt.Errorf("create temporary file: %w", err)
	}
	if err := os.Remove(f.Name()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_ = f.Close()
		return nil, fmt.Errorf("unlink temporary file: %w", err)
	}

	size, err := spool(f, r)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	in := &Input{f: f, size: size}
	if err := in.Rewind(); err != nil {
		_ = f.Close()
		return nil, err
	}
	return in, nil
}

// CaptureStdin captures os.Stdin and installs the captured file as the
// process's standard input.
func CaptureStdin(log *clog.Logger) (*Input, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		log.Debug("stdin is a terminal; reading until end of input")
	}

	in, err := Capture(os.Stdin)
	if err != nil {
		return nil, err
	}
	os.Stdin = in.f

	log.Debug("captured %d bytes of standard input", in.size)
	return in, nil
}

// spool appends successive fixed-size reads from r to w until EOF.
func spool(w io.Writer, r io.Reader) (int64, error) {
	var total int64
	buf := make([]byte, chunkSize)
	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			if _, err := w.Write(buf[:n]); err != nil {
				return total, fmt.Errorf("write to temporary file: %w", err)
			}
			total += int64(n)
		}
		if errors.Is(rerr, io.EOF) {
			return total, nil
		}
		if rerr != nil {
			return total, fmt.Errorf("read from stdin: %w", rerr)
		}
	}
}

// Rewind positions the captured stream at its first byte.
func (in *Input) Rewind() error {
	if _, err := in.f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("reset stdin: %w", err)
	}
	return nil
}

// File returns the backing file, suitable as a child's standard input.
func (in *Input) File() *os.File {
	return in.f
}

// Size returns the number of captured bytes.
func (in *Input) Size() int64 {
	return in.size
}

// Close releases the backing file.
func (in *Input) Close() error {
	return in.f.Close()
}
