package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

const inputMarker = "> "

type line struct {
	text string
	err  error
}

// Prompter asks questions on a line-oriented terminal. Answers come back
// without the trailing newline; io.EOF reports that input is closed.
type Prompter struct {
	in  io.Reader
	out io.Writer

	once      sync.Once
	closeOnce sync.Once
	lines     chan line
	done      chan struct{}
}

// NewPrompter creates a prompter reading answers from in and writing
// prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:    in,
		out:   out,
		lines: make(chan line),
		done:  make(chan struct{}),
	}
}

// Close stops the reader. A line read after Close is dropped and later
// calls to Ask report io.EOF. Close does not close in.
func (p *Prompter) Close() error {
	p.closeOnce.Do(func() { close(p.done) })
	return nil
}

// Ask prints prompt followed by an input marker and waits for one line.
// A cancelled ctx abandons the wait.
func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-p.done:
		return "", io.EOF
	default:
	}
	p.once.Do(func() { go p.read() })

	if _, err := fmt.Fprintf(p.out, "%s\n%s", prompt, inputMarker); err != nil {
		return "", fmt.Errorf("console: write prompt: %w", err)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.done:
		return "", io.EOF
	case l, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// Say prints msg on its own line.
func (p *Prompter) Say(msg string) {
	fmt.Fprintln(p.out, msg)
}

// read feeds lines until input ends or the prompter is closed. It is the
// only goroutine touching in.
func (p *Prompter) read() {
	defer close(p.lines)

	sc := bufio.NewScanner(p.in)
	for sc.Scan() {
		if !p.send(line{text: strings.TrimRight(sc.Text(), "\r")}) {
			return
		}
	}
	if err := sc.Err(); err != nil {
		p.send(line{err: fmt.Errorf("console: read input: %w", err)})
	}
}

// send delivers l unless the prompter is closed, checking done first so a
// closed prompter never hands out another line.
func (p *Prompter) send(l line) bool {
	select {
	case <-p.done:
		return false
	default:
	}
	select {
	case <-p.done:
		return false
	case p.lines <- l:
		return true
	}
}
