package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/secmon-lab/leakscan/pkg/domain/interfaces"
)

// linePrompter asks questions on out and reads one line answers from in.
type linePrompter struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

var _ interfaces.Prompter = (*linePrompter)(nil)

func newLinePrompter(in io.Reader, out io.Writer) *linePrompter {
	return &linePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// readLine returns the trimmed answer and false when input is closed
// before anything was typed.
func (x *linePrompter) readLine() (string, bool) {
	line, err := x.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

// ConfirmRestart answers true only for an explicit yes. Anything else,
// including closed input, keeps the checkpoint.
func (x *linePrompter) ConfirmRestart(start, total int) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	fmt.Fprintf(x.out, "Resuming from project %d of %d. Start from the beginning instead? (y/N): ", start+1, total)
	answer, ok := x.readLine()
	if !ok {
		fmt.Fprintln(x.out)
		return false
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// ContinueNextBatch continues on Enter and stops on 'q' or closed input.
func (x *linePrompter) ContinueNextBatch(nextBatchID int) bool {
	x.mu.Lock()
	defer x.mu.Unlock()

	fmt.Fprintf(x.out, "Press Enter to start batch %d, or 'q' to quit: ", nextBatchID)
	answer, ok := x.readLine()
	if !ok {
		fmt.Fprintln(x.out)
		return false
	}

	return !strings.EqualFold(answer, "q")
}
