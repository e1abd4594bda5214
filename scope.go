// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uiaop

import (
	"maps"
	"slices"

	"code.hybscloud.com/atomix"
)

// Scope lifecycle states. The zero value is the uninitialized state;
// StartNew stores stateRecording before the scope escapes.
const (
	stateRecording uint32 = iota + 1
	stateResolving
	stateClosed
)

// Scope records one operation graph and resolves it once. A scope is
// single-use: after Resolve or Abandon it is closed, recording through
// its handles panics, and further Resolve or BindResult calls return
// [ErrScopeClosed]. One scope per context may be live at a time.
//
// Recording and resolving are single-threaded by contract; the state
// word is atomic so cross-goroutine misuse fails loudly instead of
// corrupting the graph.
type Scope struct {
	auto   *Automation
	serial Serial
	state  atomix.Uint32
	g      graph
	binds  map[int]Returnable
}

// Serial returns the serial number assigned to this scope.
func (s *Scope) Serial() Serial {
	return s.serial
}

// record appends one node while the scope is recording.
func (s *Scope) record(n node) int {
	if s.state.Load() != stateRecording {
		panic("uiaop: scope is not recording")
	}
	return s.g.append(n)
}

// Import brings an element obtained outside the scope into the
// recording as a constant operand and returns its symbolic handle.
func (s *Scope) Import(ref ElementRef) Element {
	idx := s.record(opNode(opImportElement, ShapeElement, litOp(ref)))
	return Element{c: s.newCell(idx)}
}

// NewCacheRequest starts a prefetch declaration owned by this scope.
func (s *Scope) NewCacheRequest() CacheRequest {
	idx := s.record(opNode(opBuildCacheRequest, ShapeCache))
	return CacheRequest{c: s.newCell(idx)}
}

// BindResult declares that h's value must be available after Resolve.
// Declarations are idempotent per producing operation. Binding a
// concrete handle is a no-op success: its value is already in hand.
// Result slots are assigned in ascending node order.
func (s *Scope) BindResult(h Returnable) error {
	if s.state.Load() != stateRecording {
		return ErrScopeClosed
	}
	c := h.cellRef()
	if c.scope == nil {
		return nil
	}
	if c.scope != s {
		return ErrWrongScope
	}
	s.binds[c.node] = h
	return nil
}

// bindOrder returns bound node indices in ascending order, the slot
// assignment order of both execution strategies.
func (s *Scope) bindOrder() []int {
	return slices.Sorted(maps.Keys(s.binds))
}

// Abandon discards a recording without executing anything and releases
// the context's scope slot. Abandoning a closed scope is a no-op.
func (s *Scope) Abandon() {
	if !s.state.CompareAndSwap(stateRecording, stateClosed) {
		return
	}
	s.auto.releaseScope(s)
}
