package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Options select the output format and an optional destination file.
type Options struct {
	Format string
	File   string
}

// PrinterInterface is what commands use to emit their tables.
type PrinterInterface interface {
	Print(opts Options, tables ...*Table) error
}

// Printer renders tables to Out, or to Options.File on Fs when one is set.
type Printer struct {
	Fs  afero.Fs
	Out io.Writer
}

var _ PrinterInterface = (*Printer)(nil)

func NewPrinter(fs afero.Fs, out io.Writer) *Printer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Printer{Fs: fs, Out: out}
}

func (p *Printer) Print(opts Options, tables ...*Table) error {
	renderer, err := NewRenderer(opts.Format)
	if err != nil {
		return err
	}

	if opts.File == "" {
		return renderer.Render(p.Out, tables...)
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, tables...); err != nil {
		return err
	}

	if dir := filepath.Dir(opts.File); dir != "." {
		if err := p.Fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := afero.WriteFile(p.Fs, opts.File, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.File, err)
	}
	_, err = fmt.Fprintf(p.Out, "Report written to %s\n", opts.File)
	return err
}

// OutputFunc yields the output options in effect when a command runs, which
// is only known after configuration has been loaded.
type OutputFunc func() Options

func Fixed(opts Options) OutputFunc {
	return func() Options { return opts }
}
