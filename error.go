// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uiaop

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyInitialized reports a second Initialize without an
	// intervening Cleanup.
	ErrAlreadyInitialized = errors.New("uiaop: execution context already initialized")
	// ErrNotInitialized reports use of a context after Cleanup.
	ErrNotInitialized = errors.New("uiaop: execution context not initialized")
	// ErrScopeActive reports StartNew while another scope of the same
	// context is recording or resolving.
	ErrScopeActive = errors.New("uiaop: another scope is recording or resolving")
	// ErrScopeClosed reports Resolve or BindResult on a scope that
	// already resolved or was abandoned.
	ErrScopeClosed = errors.New("uiaop: scope is closed")
	// ErrWrongScope reports binding a symbolic handle owned by a
	// different scope.
	ErrWrongScope = errors.New("uiaop: handle belongs to another scope")
	// ErrNotAvailable reports access to a value that never
	// materialized: unbound, unresolved, unreached after a failure, or
	// absent from a cached snapshot.
	ErrNotAvailable = errors.New("uiaop: not available")
	// ErrNotRemoteable reports a recorded operation with no remote
	// instruction encoding. Compilation fails before submission.
	ErrNotRemoteable = errors.New("uiaop: not remoteable")
	// ErrLinkBusy reports a submission while another resolution owns
	// the link.
	ErrLinkBusy = errors.New("uiaop: link busy")
	// ErrLinkClosed reports a submission on, or waiting across, a
	// closed link.
	ErrLinkClosed = errors.New("uiaop: link closed")
)

// IsNotAvailable reports whether err denotes access to a result that was
// never materialized.
func IsNotAvailable(err error) bool {
	return errors.Is(err, ErrNotAvailable)
}

// notAvailable wraps ErrNotAvailable with call-site context.
func notAvailable(format string, args ...any) error {
	args = append(args, ErrNotAvailable)
	return fmt.Errorf("uiaop: "+format+": %w", args...)
}

// OpError is a local resolution failure: the provider call for one graph
// node failed. Nodes before Node executed and their bound handles stay
// materialized; Node and everything after it never produced values.
type OpError struct {
	Node int
	Op   string
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("uiaop: %s at node %d: %v", e.Op, e.Node, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

// ProgramError is a remote resolution failure: the instruction at Instr
// failed and the whole program was discarded. No result slots cross
// back, so every bound handle of the resolution stays unmaterialized.
type ProgramError struct {
	Instr int
	Op    string
	Err   error
}

func (e *ProgramError) Error() string {
	return fmt.Sprintf("uiaop: remote program failed at instruction %d (%s): %v", e.Instr, e.Op, e.Err)
}

func (e *ProgramError) Unwrap() error { return e.Err }
