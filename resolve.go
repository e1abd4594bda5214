// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uiaop

// Resolve executes the recording under the context's execution mode and
// materializes every bound handle that crossed back. It is one-shot:
// the scope is closed afterwards whether resolution succeeded or
// failed, and the context may start a new scope.
//
// Failure models differ by mode. Locally the walk aborts at the first
// failing provider call and returns an [*OpError]; handles bound to
// earlier nodes keep their values. Remotely the program either fills
// every result slot or fails as a whole with a [*ProgramError]; no
// partial remote progress is observable.
func (s *Scope) Resolve() error {
	if !s.state.CompareAndSwap(stateRecording, stateResolving) {
		return ErrScopeClosed
	}
	var err error
	if s.auto.remote {
		err = s.resolveRemote()
	} else {
		err = s.resolveLocal()
	}
	s.state.Store(stateClosed)
	s.auto.releaseScope(s)
	return err
}

// resolveLocal walks the graph in recorded order, one provider call per
// node. Bound handles materialize as soon as their node executes, so an
// abort keeps every value produced before the failing call.
func (s *Scope) resolveLocal() error {
	p := s.auto.provider
	vals := make([]any, len(s.g.nodes))
	for i, n := range s.g.nodes {
		v, err := evalNode(p, n, vals)
		if err != nil {
			return &OpError{Node: i, Op: n.kind.String(), Err: err}
		}
		vals[i] = v
		if h, ok := s.binds[i]; ok {
			h.FromRemoteResult(v)
		}
	}
	return nil
}

// resolveRemote compiles the graph and ships it in a single round trip.
// A compilation failure returns before anything is submitted. A Left
// reply materializes nothing.
func (s *Scope) resolveRemote() error {
	order := s.bindOrder()
	prog, err := compile(&s.g, order)
	if err != nil {
		return err
	}
	r, err := s.auto.submit(prog)
	if err != nil {
		return err
	}
	if pe, ok := r.GetLeft(); ok {
		return pe
	}
	slots, _ := r.GetRight()
	for slot, idx := range order {
		s.binds[idx].FromRemoteResult(slots[slot])
	}
	return nil
}
