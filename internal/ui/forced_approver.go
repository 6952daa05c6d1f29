package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/vvka-141/tabload/internal/tui"
	"github.com/vvka-141/tabload/pkg/tabload"
)

// ForcedApprover approves without input after a countdown, giving the user
// a last chance to press Ctrl+C. Used when no terminal is attached.
type ForcedApprover struct {
	output    io.Writer
	countdown time.Duration
	sleepFn   func(time.Duration)
}

// NewForcedApprover creates a ForcedApprover writing to stderr.
func NewForcedApprover(countdown time.Duration) *ForcedApprover {
	return &ForcedApprover{output: os.Stderr, countdown: countdown, sleepFn: time.Sleep}
}

// RequestApproval warns about target, counts down and approves.
func (a *ForcedApprover) RequestApproval(ctx context.Context, target string) (bool, error) {
	fmt.Fprintf(a.output, "\n%s\n", tui.WarningStyle.Render(
		fmt.Sprintf("Existing table %s will be dropped and recreated", target)))

	for i := int(a.countdown.Seconds()); i > 0; i-- {
		select {
		case <-ctx.Done():
			fmt.Fprintln(a.output)
			return false, ctx.Err()
		default:
			fmt.Fprintf(a.output, "\rReplacing in: %d seconds... (Press Ctrl+C to cancel)", i)
			a.sleepFn(time.Second)
		}
	}

	fmt.Fprintf(a.output, "\r%s Replacing %s                                  \n", tui.SymbolCheck, target)
	return true, nil
}

var _ tabload.Approver = (*ForcedApprover)(nil)
