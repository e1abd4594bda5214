// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uiaop

import "fmt"

// ElementRef is an opaque provider reference to one UI element.
type ElementRef = any

// PatternRef is an opaque provider reference to one acquired control
// pattern. A nil PatternRef means the element does not support it.
type PatternRef = any

// RangeRef is an opaque provider reference to one text range.
type RangeRef = any

// PropertyID identifies a UI-automation element property.
type PropertyID int32

const (
	ControlTypeProperty PropertyID = 30003
	NameProperty        PropertyID = 30005
	IsEnabledProperty   PropertyID = 30010
)

// PatternID identifies a UI-automation control pattern.
type PatternID int32

const (
	InvokePatternID PatternID = 10000
	TextPatternID   PatternID = 10014
)

// NavigateDirection selects the tree edge for element navigation.
type NavigateDirection int32

const (
	NavParent NavigateDirection = iota
	NavNextSibling
	NavPreviousSibling
	NavFirstChild
	NavLastChild
)

// MethodID identifies a pattern or range method routed through
// [Provider.CallMethod].
type MethodID int32

const (
	MethodInvoke MethodID = iota + 1
	MethodTextGetDocumentRange
	MethodTextGetSupportedTextSelection
	MethodRangeGetEnclosingElement
	MethodRangeGetText
)

func (m MethodID) String() string {
	switch m {
	case MethodInvoke:
		return "Invoke"
	case MethodTextGetDocumentRange:
		return "Text.GetDocumentRange"
	case MethodTextGetSupportedTextSelection:
		return "Text.GetSupportedTextSelection"
	case MethodRangeGetEnclosingElement:
		return "TextRange.GetEnclosingElement"
	case MethodRangeGetText:
		return "TextRange.GetText"
	}
	return fmt.Sprintf("method(%d)", int32(m))
}

// Selection capabilities reported by [TextPattern.GetSupportedTextSelection].
const (
	SupportedTextSelectionNone     int32 = 0
	SupportedTextSelectionSingle   int32 = 1
	SupportedTextSelectionMultiple int32 = 2
)

// Provider is the boundary to a UI-automation implementation. The engine
// performs every elementary operation through it; implementations own
// element identity and tree semantics. Calls arrive from at most one
// goroutine at a time: the resolving goroutine in local and self-hosted
// modes, the serving goroutine in hosted mode.
type Provider interface {
	// GetProperty reads one property of an element.
	GetProperty(ref ElementRef, id PropertyID) (any, error)
	// Navigate returns the element one step along dir, or a nil
	// reference when the tree ends in that direction.
	Navigate(ref ElementRef, dir NavigateDirection) (ElementRef, error)
	// GetPattern acquires a control pattern. A nil result with nil
	// error means the element does not support the pattern.
	GetPattern(ref ElementRef, id PatternID) (PatternRef, error)
	// CallMethod invokes one pattern or range method on target.
	CallMethod(target any, m MethodID, args []any) (any, error)
}

// ElementResult is the element payload produced by element-typed
// operations: the provider reference plus the cached snapshot assembled
// when a cache request was attached to the producing operation.
type ElementResult struct {
	Ref    ElementRef
	Cached *CachedData
}

// CachedData is the prefetched property and pattern snapshot of one
// element. A pattern entry holding nil records that the pattern was
// requested and the element does not support it; a missing entry means
// the pattern was never requested.
type CachedData struct {
	Properties map[PropertyID]any
	Patterns   map[PatternID]PatternRef
}

func (r ElementResult) cachedProp(id PropertyID) (any, error) {
	if r.Cached == nil {
		return nil, notAvailable("no cached data on element")
	}
	v, ok := r.Cached.Properties[id]
	if !ok {
		return nil, notAvailable("property %d not cached", id)
	}
	return v, nil
}

func (r ElementResult) cachedPattern(id PatternID) (PatternRef, error) {
	if r.Cached == nil {
		return nil, notAvailable("no cached data on element")
	}
	pr, ok := r.Cached.Patterns[id]
	if !ok {
		return nil, notAvailable("pattern %d not cached", id)
	}
	// pr is nil when the pattern was fetched and unsupported.
	return pr, nil
}
