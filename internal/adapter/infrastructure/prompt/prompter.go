// Package prompt provides operator confirmation adapters.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"calmnetconfig/internal/port"
)

// AffirmativeToken is the only answer that lets the pipeline continue.
const AffirmativeToken = "y"

type answer struct {
	line string
	err  error
}

// LinePrompter asks on out and reads one line from in.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer

	// a read abandoned by a cancelled Confirm is handed to the next call
	mu      sync.Mutex
	pending chan answer
}

var _ port.Prompter = (*LinePrompter)(nil)

// NewLinePrompter creates a prompter reading answers from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Confirm prints the question and returns true only for the exact answer "y".
// End of input counts as a refusal. It returns ctx.Err() as soon as ctx is
// done, without waiting for the operator.
func (p *LinePrompter) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	answers := p.read()
	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return false, ctx.Err()
	case a := <-answers:
		p.mu.Lock()
		p.pending = nil
		p.mu.Unlock()
		if a.err != nil && !errors.Is(a.err, io.EOF) {
			return false, fmt.Errorf("failed to read answer: %w", a.err)
		}
		return strings.TrimRight(a.line, "\r\n") == AffirmativeToken, nil
	}
}

// read starts a line read, or reuses the one still outstanding from a cancelled call.
func (p *LinePrompter) read() <-chan answer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pending == nil {
		ch := make(chan answer, 1)
		go func() {
			line, err := p.in.ReadString('\n')
			ch <- answer{line: line, err: err}
		}()
		p.pending = ch
	}
	return p.pending
}

// AlwaysYes accepts every question without reading input. Used with --dontask.
type AlwaysYes struct{}

var _ port.Prompter = AlwaysYes{}

func (AlwaysYes) Confirm(ctx context.Context, _ string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return true, nil
}
