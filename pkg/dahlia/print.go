package dahlia

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/dahlia/pkg/errors"
)

// Fprint converts its arguments and writes them to w
func (d *Dahlia) Fprint(w io.Writer, args ...interface{}) (int, error) {
	return fmt.Fprint(w, d.Convert(fmt.Sprint(args...)))
}

// Fprintf converts the formatted string and writes it to w
func (d *Dahlia) Fprintf(w io.Writer, format string, args ...interface{}) (int, error) {
	return fmt.Fprint(w, d.Convert(fmt.Sprintf(format, args...)))
}

// Fprintln converts its arguments and writes them to w with a trailing
// newline. The newline lands after any auto-reset.
func (d *Dahlia) Fprintln(w io.Writer, args ...interface{}) (int, error) {
	return fmt.Fprintln(w, d.Convert(fmt.Sprint(args...)))
}

// Print converts its arguments and writes them to stdout
func (d *Dahlia) Print(args ...interface{}) (int, error) {
	return d.Fprint(os.Stdout, args...)
}

// Printf converts the formatted string and writes it to stdout
func (d *Dahlia) Printf(format string, args ...interface{}) (int, error) {
	return d.Fprintf(os.Stdout, format, args...)
}

// Println converts its arguments and writes them to stdout with a
// trailing newline
func (d *Dahlia) Println(args ...interface{}) (int, error) {
	return d.Fprintln(os.Stdout, args...)
}

// Finput writes the converted prompt to w, then reads one line from r and
// returns it without the trailing newline. I/O failures are reported as
// recoverable errors; the conversion itself cannot fail.
func (d *Dahlia) Finput(r io.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, d.Convert(prompt)); err != nil {
		return "", errors.Wrap(err, errors.ErrWrite, "failed to write prompt")
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRead, "failed to read line")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Input writes the converted prompt to stdout and reads one line from
// stdin
func (d *Dahlia) Input(prompt string) (string, error) {
	return d.Finput(os.Stdin, os.Stdout, prompt)
}

// Reset writes the full reset sequence to stdout
func (d *Dahlia) Reset() error {
	if _, err := fmt.Fprint(os.Stdout, FullReset); err != nil {
		return errors.Wrap(err, errors.ErrWrite, "failed to write reset")
	}
	return nil
}
