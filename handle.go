// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uiaop

// cell is the shared state behind proxy handles. Copies of a handle
// alias one cell; materialization writes through it. A cell is symbolic
// while it still refers to an unexecuted graph node, and concrete once
// an eager call or a resolution has stored a value or an error.
type cell struct {
	auto  *Automation
	scope *Scope // owning scope; nil for handles created outside a recording
	node  int    // producing node index within scope's graph
	val   any
	err   error
	done  bool // val or err is set
}

func (c *cell) symbolic() bool {
	return c.scope != nil && !c.done
}

func (c *cell) set(v any) {
	c.val = v
	c.done = true
}

func (c *cell) fail(err error) {
	c.err = err
	c.done = true
}

// value returns the materialized payload. Until the producing operation
// has executed and crossed back, it fails with [ErrNotAvailable].
func (c *cell) value() (any, error) {
	if !c.done {
		return nil, notAvailable("result not materialized")
	}
	if c.err != nil {
		return nil, c.err
	}
	return c.val, nil
}

// newCell creates the symbolic cell for the output of node idx.
func (s *Scope) newCell(idx int) *cell {
	return &cell{auto: s.auto, scope: s, node: idx}
}

// readyCell creates a concrete cell holding an eager call's outcome.
func readyCell(a *Automation, v any, err error) *cell {
	c := &cell{auto: a}
	if err != nil {
		c.fail(err)
	} else {
		c.set(v)
	}
	return c
}

// Returnable marks handle types whose results may cross back from a
// resolution. [Scope.BindResult] accepts only conforming handles, so
// binding a non-returnable value such as [CacheRequest] is rejected at
// compile time. Only package handle types conform.
type Returnable interface {
	// FromRemoteResult materializes the handle from a result payload.
	// It panics when the payload does not match the handle's shape;
	// a conforming runtime never produces such a payload.
	FromRemoteResult(v any)

	cellRef() *cell
}

// Bool is a proxy handle for a boolean produced by a recorded operation.
type Bool struct{ c *cell }

// Get returns the concrete value. It fails with [ErrNotAvailable] until
// the producing operation has executed and the handle was bound or
// evaluated eagerly.
func (b Bool) Get() (bool, error) {
	v, err := b.c.value()
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (b Bool) FromRemoteResult(v any) {
	if _, ok := v.(bool); !ok {
		panic("uiaop: bool result payload has wrong type")
	}
	b.c.set(v)
}

func (b Bool) cellRef() *cell { return b.c }

// Int is a proxy handle for a 32-bit integer produced by a recorded
// operation, such as a control type or a selection capability.
type Int struct{ c *cell }

// Get returns the concrete value. It fails with [ErrNotAvailable] until
// the producing operation has executed and the handle was bound or
// evaluated eagerly.
func (i Int) Get() (int32, error) {
	v, err := i.c.value()
	if err != nil {
		return 0, err
	}
	return v.(int32), nil
}

func (i Int) FromRemoteResult(v any) {
	if _, ok := v.(int32); !ok {
		panic("uiaop: int result payload has wrong type")
	}
	i.c.set(v)
}

func (i Int) cellRef() *cell { return i.c }

// String is a proxy handle for a text value produced by a recorded
// operation.
type String struct{ c *cell }

// Get returns the concrete value. It fails with [ErrNotAvailable] until
// the producing operation has executed and the handle was bound or
// evaluated eagerly.
func (s String) Get() (string, error) {
	v, err := s.c.value()
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (s String) FromRemoteResult(v any) {
	if _, ok := v.(string); !ok {
		panic("uiaop: string result payload has wrong type")
	}
	s.c.set(v)
}

func (s String) cellRef() *cell { return s.c }
