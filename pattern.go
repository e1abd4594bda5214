// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uiaop

// TextPattern is a proxy handle for an element's text pattern.
type TextPattern struct{ c *cell }

// Get returns the concrete pattern reference. A nil reference with nil
// error means the pattern was fetched and the element does not support
// it. It fails with [ErrNotAvailable] until materialized.
func (p TextPattern) Get() (PatternRef, error) {
	return p.c.value()
}

func (p TextPattern) FromRemoteResult(v any) { p.c.set(v) }

func (p TextPattern) cellRef() *cell { return p.c }

// GetDocumentRange returns the range spanning the main text of the
// pattern's element.
func (p TextPattern) GetDocumentRange() TextRange {
	return TextRange{c: methodCall(p.c, MethodTextGetDocumentRange, ShapeRange, nil, -1)}
}

// GetSupportedTextSelection reports the element's selection capability
// as one of the SupportedTextSelection values.
func (p TextPattern) GetSupportedTextSelection() Int {
	return Int{c: methodCall(p.c, MethodTextGetSupportedTextSelection, ShapeInt, nil, -1)}
}

// InvokePattern is a proxy handle for an element's invoke pattern.
type InvokePattern struct{ c *cell }

// Get returns the concrete pattern reference, like [TextPattern.Get].
func (p InvokePattern) Get() (PatternRef, error) {
	return p.c.value()
}

func (p InvokePattern) FromRemoteResult(v any) { p.c.set(v) }

func (p InvokePattern) cellRef() *cell { return p.c }

// Invoke triggers the element's default action. During a recording it
// appends a unit-output node and returns nil; the side effect happens at
// resolution. Invoke has no remote instruction encoding, so a remote
// resolve of a recording containing it fails with [ErrNotRemoteable]
// before anything is submitted. On a concrete handle the call executes
// immediately and the returned error is the provider's.
func (p InvokePattern) Invoke() error {
	if p.c.symbolic() {
		s := p.c.scope
		s.record(opNode(opInvokeMethod, ShapeUnit, refOp(p.c.node), litOp(MethodInvoke)))
		return nil
	}
	target, err := p.c.value()
	if err != nil {
		return err
	}
	_, err = execMethod(p.c.auto.provider, target, MethodInvoke, nil, ShapeUnit, nil)
	return err
}

// TextRange is a proxy handle for one text range.
type TextRange struct{ c *cell }

// Get returns the concrete range reference. It fails with
// [ErrNotAvailable] until materialized.
func (r TextRange) Get() (RangeRef, error) {
	return r.c.value()
}

func (r TextRange) FromRemoteResult(v any) { r.c.set(v) }

func (r TextRange) cellRef() *cell { return r.c }

// GetEnclosingElement returns the innermost element enclosing the
// range. An optional cache request declares the properties and patterns
// to prefetch on the result; it must belong to the same recording scope.
func (r TextRange) GetEnclosingElement(req ...CacheRequest) Element {
	if r.c.symbolic() {
		cn := cacheArg(r.c.scope, req)
		return Element{c: methodCall(r.c, MethodRangeGetEnclosingElement, ShapeElement, nil, cn)}
	}
	if len(req) > 0 {
		panic("uiaop: cache request requires a recording scope")
	}
	return Element{c: methodCall(r.c, MethodRangeGetEnclosingElement, ShapeElement, nil, -1)}
}

// GetText returns up to maxLength characters of the range's text;
// negative maxLength returns all of it.
func (r TextRange) GetText(maxLength int) String {
	return String{c: methodCall(r.c, MethodRangeGetText, ShapeString, []operand{litOp(maxLength)}, -1)}
}

// methodCall appends an invoke-method node, or calls eagerly when the
// target handle is concrete. extra carries literal trailing arguments.
func methodCall(c *cell, m MethodID, out Shape, extra []operand, cacheNode int) *cell {
	if c.symbolic() {
		s := c.scope
		args := append([]operand{refOp(c.node), litOp(m)}, extra...)
		n := opNode(opInvokeMethod, out, args...).withCache(cacheNode)
		return s.newCell(s.record(n))
	}
	target, err := c.value()
	if err != nil {
		return readyCell(c.auto, nil, err)
	}
	v, err := execMethod(c.auto.provider, target, m, litArgs(extra), out, nil)
	if err == nil {
		err = checkOutput(out, v)
	}
	return readyCell(c.auto, v, err)
}
