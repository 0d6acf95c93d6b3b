package svgembed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/esimov/svgembed/utils"
)

// Ops holds the source and destination of an embedding operation.
// A path equal to PipeName means stdin for the source and stdout for the destination.
type Ops struct {
	Src, Dst, PipeName string

	// Stdin and Stdout default to os.Stdin and os.Stdout.
	Stdin  io.Reader
	Stdout io.Writer
}

// Execute loads the source image, composes the document and writes it to the destination.
// The source existence is checked before anything else: a missing source returns
// an error wrapping ErrInputNotFound and leaves the destination untouched.
// The destination file is created or truncated only once the document is ready.
func (p *Processor) Execute(op *Ops) error {
	var (
		src io.Reader
		dst io.Writer
	)

	if op.isPipe(op.Src) {
		src = op.stdin()
		if utils.IsTerminal(src) {
			return fmt.Errorf("%w: `-` should be used with a pipe for stdin", ErrUsage)
		}
	} else {
		fi, err := os.Stat(op.Src)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("%w: %s", ErrInputNotFound, op.Src)
			}
			return fmt.Errorf("unable to load the source image: %w", err)
		}
		if fi.IsDir() {
			return fmt.Errorf("the source %s is a directory", op.Src)
		}

		f, err := os.Open(op.Src)
		if err != nil {
			return fmt.Errorf("unable to open the source file: %w", err)
		}
		defer f.Close()
		src = f
	}

	if op.isPipe(op.Dst) {
		dst = op.stdout()
		if utils.IsTerminal(dst) {
			return fmt.Errorf("%w: `-` should be used with a pipe for stdout", ErrUsage)
		}
	}

	proc := *p
	if proc.Source == "" && !op.isPipe(op.Src) {
		proc.Source = op.Src
	}

	var buf bytes.Buffer
	if err := proc.Process(src, &buf); err != nil {
		return err
	}

	if dst != nil {
		if _, err := dst.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("unable to write to stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(op.Dst, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	return nil
}

// IsPipe reports whether the destination is the standard output.
func (op *Ops) IsPipe() bool {
	return op.isPipe(op.Dst)
}

func (op *Ops) isPipe(path string) bool {
	return op.PipeName != "" && path == op.PipeName
}

func (op *Ops) stdin() io.Reader {
	if op.Stdin != nil {
		return op.Stdin
	}
	return os.Stdin
}

func (op *Ops) stdout() io.Writer {
	if op.Stdout != nil {
		return op.Stdout
	}
	return os.Stdout
}
