package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vvka-141/tabload/internal/tui"
	"github.com/vvka-141/tabload/pkg/tabload"
)

// InteractiveApprover asks the user to type the table name before an
// existing table is dropped.
type InteractiveApprover struct {
	input  io.Reader
	output io.Writer
}

// NewInteractiveApprover creates an InteractiveApprover on stdin/stderr.
func NewInteractiveApprover() *InteractiveApprover {
	return &InteractiveApprover{input: os.Stdin, output: os.Stderr}
}

// RequestApproval prompts for the table part of target ("sqlite:db#table"
// asks for "table").
func (a *InteractiveApprover) RequestApproval(ctx context.Context, target string) (bool, error) {
	name := target
	if i := strings.LastIndex(target, "#"); i >= 0 {
		name = target[i+1:]
	}

	fmt.Fprintf(a.output, "\n%s\n", tui.WarningStyle.Render(
		fmt.Sprintf("WARNING: --replace drops table %s if it exists", target)))
	fmt.Fprintf(a.output, "To confirm, type the table name '%s' and press Enter: ", name)

	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		line, err := bufio.NewReader(a.input).ReadString('\n')
		if err != nil && line == "" {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(line)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if input == name {
			fmt.Fprintf(a.output, "%s Confirmed.\n", tui.SymbolCheck)
			return true, nil
		}
		fmt.Fprintf(a.output, "%s Input '%s' does not match '%s'. Export cancelled.\n", tui.SymbolCross, input, name)
		return false, nil
	}
}

var _ tabload.Approver = (*InteractiveApprover)(nil)
