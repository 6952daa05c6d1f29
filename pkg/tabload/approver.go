package tabload

import "context"

// Approver confirms destructive export operations, such as dropping an
// existing table before --replace recreates it.
//
// Implementations:
//   - ForcedApprover: shows a countdown and approves
//   - InteractiveApprover: asks the user to type the target name
type Approver interface {
	// RequestApproval returns true when the user approves replacing target.
	// Cancelling ctx aborts the request with ctx.Err().
	RequestApproval(ctx context.Context, target string) (bool, error)
}
