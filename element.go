// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uiaop

// Element is a proxy handle for one UI element. While its scope records,
// every method appends one operation node and returns a new symbolic
// handle. On a concrete handle (wrapped via [Automation.Element] or
// materialized by a resolution) the same methods execute eagerly, one
// provider call each, and errors surface at the terminal Get accessors.
type Element struct{ c *cell }

// Get returns the concrete provider reference. It fails with
// [ErrNotAvailable] until the producing operation has executed and the
// handle was bound or evaluated eagerly.
func (e Element) Get() (ElementRef, error) {
	r, err := e.result()
	if err != nil {
		return nil, err
	}
	return r.Ref, nil
}

func (e Element) FromRemoteResult(v any) {
	r, ok := v.(ElementResult)
	if !ok {
		panic("uiaop: element result payload has wrong type")
	}
	e.c.set(r)
}

func (e Element) cellRef() *cell { return e.c }

func (e Element) result() (ElementResult, error) {
	v, err := e.c.value()
	if err != nil {
		return ElementResult{}, err
	}
	return v.(ElementResult), nil
}

// GetName reads the element name. With useCachedAPI the value is served
// from the cached snapshot of the producing operation's cache request;
// a missing snapshot entry fails with [ErrNotAvailable].
func (e Element) GetName(useCachedAPI bool) String {
	return String{c: e.propGet(NameProperty, ShapeString, useCachedAPI)}
}

// GetIsEnabled reads the enabled state, cached or live like [Element.GetName].
func (e Element) GetIsEnabled(useCachedAPI bool) Bool {
	return Bool{c: e.propGet(IsEnabledProperty, ShapeBool, useCachedAPI)}
}

// GetControlType reads the control type, cached or live like [Element.GetName].
func (e Element) GetControlType(useCachedAPI bool) Int {
	return Int{c: e.propGet(ControlTypeProperty, ShapeInt, useCachedAPI)}
}

// GetParentElement navigates to the parent. An optional cache request
// declares the properties and patterns to prefetch on the result; it
// must belong to the same recording scope.
func (e Element) GetParentElement(req ...CacheRequest) Element {
	return e.navigate(NavParent, req)
}

// GetFirstChildElement navigates to the first child. An optional cache
// request prefetches on the result like [Element.GetParentElement].
func (e Element) GetFirstChildElement(req ...CacheRequest) Element {
	return e.navigate(NavFirstChild, req)
}

// GetLastChildElement navigates to the last child.
func (e Element) GetLastChildElement(req ...CacheRequest) Element {
	return e.navigate(NavLastChild, req)
}

// GetNextSiblingElement navigates to the next sibling.
func (e Element) GetNextSiblingElement(req ...CacheRequest) Element {
	return e.navigate(NavNextSibling, req)
}

// GetPreviousSiblingElement navigates to the previous sibling.
func (e Element) GetPreviousSiblingElement(req ...CacheRequest) Element {
	return e.navigate(NavPreviousSibling, req)
}

// GetTextPattern acquires the text pattern. With useCached the pattern
// is served from the cached snapshot: unrequested fails with
// [ErrNotAvailable], requested-but-unsupported yields a nil reference.
func (e Element) GetTextPattern(useCached bool) TextPattern {
	return TextPattern{c: e.patternGet(TextPatternID, useCached)}
}

// GetInvokePattern acquires the invoke pattern, cached or live like
// [Element.GetTextPattern].
func (e Element) GetInvokePattern(useCached bool) InvokePattern {
	return InvokePattern{c: e.patternGet(InvokePatternID, useCached)}
}

// propGet appends a property-read node, or reads eagerly when concrete.
func (e Element) propGet(id PropertyID, out Shape, cached bool) *cell {
	if e.c.symbolic() {
		s := e.c.scope
		idx := s.record(opNode(opGetProperty, out, refOp(e.c.node), litOp(id), litOp(cached)))
		return s.newCell(idx)
	}
	er, err := e.result()
	if err != nil {
		return readyCell(e.c.auto, nil, err)
	}
	v, err := execProperty(e.c.auto.provider, er, id, cached)
	if err == nil {
		err = checkOutput(out, v)
	}
	return readyCell(e.c.auto, v, err)
}

// navigate appends a navigation node, or navigates eagerly when
// concrete. Eager navigation cannot take a cache request: cache
// requests exist only inside a recording.
func (e Element) navigate(dir NavigateDirection, req []CacheRequest) Element {
	if e.c.symbolic() {
		s := e.c.scope
		n := opNode(opNavigate, ShapeElement, refOp(e.c.node), litOp(dir))
		idx := s.record(n.withCache(cacheArg(s, req)))
		return Element{c: s.newCell(idx)}
	}
	if len(req) > 0 {
		panic("uiaop: cache request requires a recording scope")
	}
	er, err := e.result()
	if err != nil {
		return Element{c: readyCell(e.c.auto, nil, err)}
	}
	v, err := execNavigate(e.c.auto.provider, er, dir, nil)
	return Element{c: readyCell(e.c.auto, v, err)}
}

// patternGet appends a pattern-acquisition node, or acquires eagerly
// when concrete.
func (e Element) patternGet(id PatternID, cached bool) *cell {
	if e.c.symbolic() {
		s := e.c.scope
		idx := s.record(opNode(opGetPattern, ShapePattern, refOp(e.c.node), litOp(id), litOp(cached)))
		return s.newCell(idx)
	}
	er, err := e.result()
	if err != nil {
		return readyCell(e.c.auto, nil, err)
	}
	v, err := execPattern(e.c.auto.provider, er, id, cached)
	return readyCell(e.c.auto, v, err)
}
