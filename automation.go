// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uiaop

import "code.hybscloud.com/atomix"

// Automation is the execution context: the provider, the execution mode
// fixed at construction, and the link carrying remote submissions. All
// scope state lives here rather than in package globals, so a context
// owns exactly what its scopes touch.
type Automation struct {
	provider Provider
	remote   bool
	link     *Link
	rt       *Runtime // non-nil when the context pumps the runtime inline
	active   atomix.Uint32
	closed   atomix.Uint32
}

// initGuard enforces one live execution context per process.
var initGuard atomix.Uint32

// current is the live execution context. Initialize and Cleanup run
// single-threaded at process startup and teardown by contract.
var current *Automation

// Initialize constructs the execution context. With useRemoteOperations
// the context carries its own [Link] and [Runtime] pair and pumps the
// runtime on the resolving goroutine; otherwise scopes resolve as
// immediate provider calls. A second Initialize without Cleanup returns
// [ErrAlreadyInitialized].
func Initialize(useRemoteOperations bool, p Provider) (*Automation, error) {
	if p == nil {
		panic("uiaop: nil provider")
	}
	if !initGuard.CompareAndSwap(0, 1) {
		return nil, ErrAlreadyInitialized
	}
	a := &Automation{provider: p, remote: useRemoteOperations}
	if useRemoteOperations {
		a.link = NewLink()
		a.rt = NewRuntime(p)
	}
	current = a
	return a, nil
}

// InitializeHosted constructs a remote-mode context submitting over l.
// The runtime end of l must be served elsewhere, typically
// [Runtime.Serve] on a goroutine standing in for the provider process.
// Direct calls on concrete handles still use p on the calling goroutine.
func InitializeHosted(p Provider, l *Link) (*Automation, error) {
	if p == nil {
		panic("uiaop: nil provider")
	}
	if l == nil {
		panic("uiaop: nil link")
	}
	if !initGuard.CompareAndSwap(0, 1) {
		return nil, ErrAlreadyInitialized
	}
	a := &Automation{provider: p, remote: true, link: l}
	current = a
	return a, nil
}

// Cleanup tears down the current execution context, closing its link,
// and frees the guard so Initialize may be called again. Safe to call
// when nothing is initialized.
func Cleanup() {
	a := current
	if a == nil {
		return
	}
	current = nil
	a.closed.Add(1)
	if a.link != nil {
		a.link.Close()
	}
	initGuard.Store(0)
}

// Remote reports whether this context resolves scopes remotely.
func (a *Automation) Remote() bool {
	return a.remote
}

// StartNew begins recording a new scope. One scope may record or
// resolve at a time per context; a second StartNew before the first
// scope closes returns [ErrScopeActive].
func (a *Automation) StartNew() (*Scope, error) {
	if a.closed.Load() != 0 {
		return nil, ErrNotInitialized
	}
	sn := nextSerial()
	if !a.active.CompareAndSwap(0, sn) {
		return nil, ErrScopeActive
	}
	s := &Scope{auto: a, serial: sn, binds: make(map[int]Returnable)}
	s.state.Store(stateRecording)
	return s, nil
}

// releaseScope frees the active slot held by s.
func (a *Automation) releaseScope(s *Scope) {
	a.active.CompareAndSwap(s.serial, 0)
}

// Element wraps a provider element reference as a concrete handle for
// direct scope-free use: its methods call the provider immediately.
func (a *Automation) Element(ref ElementRef) Element {
	c := &cell{auto: a}
	c.set(ElementResult{Ref: ref})
	return Element{c: c}
}

// submit ships one compiled program over the context's link, pumping
// the bundled runtime inline when the context is self-hosted.
func (a *Automation) submit(prog *Program) (reply, error) {
	if a.rt != nil {
		return a.link.submit(prog, func() bool { return a.rt.ServeOne(a.link) })
	}
	return a.link.submit(prog, nil)
}
