package input

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Reader reads one command per line. On an interactive terminal it uses raw
// mode with line editing and history; otherwise it reads plain lines.
type Reader struct {
	prompt string

	terminal *term.Terminal
	restore  func()

	lines *bufio.Reader
	out   io.Writer
}

type stdio struct {
	io.Reader
	io.Writer
}

// NewReader creates a reader on stdin/stdout
func NewReader(prompt string) *Reader {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		if oldState, err := term.MakeRaw(fd); err == nil {
			return &Reader{
				prompt:   prompt,
				terminal: term.NewTerminal(stdio{os.Stdin, os.Stdout}, prompt),
				restore:  func() { term.Restore(fd, oldState) },
				out:      os.Stdout,
			}
		}
	}
	return NewPlainReader(os.Stdin, os.Stdout, prompt)
}

// NewPlainReader reads lines from r and writes prompts to w
func NewPlainReader(r io.Reader, w io.Writer, prompt string) *Reader {
	return &Reader{
		prompt: prompt,
		lines:  bufio.NewReader(r),
		out:    w,
	}
}

// ReadLine returns the next line without its newline. io.EOF is returned
// when input ends; Ctrl+C and Ctrl+D end input on a terminal.
func (r *Reader) ReadLine() (string, error) {
	if r.terminal != nil {
		return r.terminal.ReadLine()
	}

	if r.prompt != "" {
		io.WriteString(r.out, r.prompt)
	}
	line, err := r.lines.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Writer returns where output should go so it interleaves with the prompt.
// In raw mode the terminal translates newlines for us.
func (r *Reader) Writer() io.Writer {
	if r.terminal != nil {
		return r.terminal
	}
	return r.out
}

// Close restores the terminal state
func (r *Reader) Close() {
	if r.restore != nil {
		r.restore()
		r.restore = nil
	}
}
