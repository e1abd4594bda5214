// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uiaop_test

import (
	"errors"
	"fmt"
	"testing"

	"code.hybscloud.com/uiaop"
)

// fakeElement is one node of the in-memory UI tree.
type fakeElement struct {
	name        string
	controlType int32
	enabled     bool
	parent      *fakeElement
	children    []*fakeElement
	text        *fakeText // non-nil when the element supports the text pattern
	invokable   bool
	invoked     int
}

// fakeText models a text-pattern provider for one element.
type fakeText struct {
	owner   *fakeElement
	content string
	sel     int32
}

// fakeRange is an acquired text range.
type fakeRange struct {
	owner   *fakeElement
	content string
}

// fakeInvoke is an acquired invoke pattern.
type fakeInvoke struct {
	owner *fakeElement
}

// fakeProvider implements uiaop.Provider over a fakeElement tree. Every
// call is logged for order assertions; errOn injects a failure when the
// logged key matches.
type fakeProvider struct {
	calls []string
	errOn map[string]error
}

func (f *fakeProvider) log(key string) error {
	f.calls = append(f.calls, key)
	if err, ok := f.errOn[key]; ok {
		return err
	}
	return nil
}

func elemOf(ref uiaop.ElementRef) (*fakeElement, error) {
	el, ok := ref.(*fakeElement)
	if !ok || el == nil {
		return nil, errors.New("null element")
	}
	return el, nil
}

func (f *fakeProvider) GetProperty(ref uiaop.ElementRef, id uiaop.PropertyID) (any, error) {
	el, err := elemOf(ref)
	if err != nil {
		return nil, err
	}
	if err := f.log(fmt.Sprintf("prop/%s/%d", el.name, id)); err != nil {
		return nil, err
	}
	switch id {
	case uiaop.NameProperty:
		return el.name, nil
	case uiaop.IsEnabledProperty:
		return el.enabled, nil
	case uiaop.ControlTypeProperty:
		return el.controlType, nil
	}
	return nil, fmt.Errorf("unknown property %d", id)
}

func (f *fakeProvider) Navigate(ref uiaop.ElementRef, dir uiaop.NavigateDirection) (uiaop.ElementRef, error) {
	el, err := elemOf(ref)
	if err != nil {
		return nil, err
	}
	if err := f.log(fmt.Sprintf("nav/%s/%d", el.name, dir)); err != nil {
		return nil, err
	}
	var to *fakeElement
	switch dir {
	case uiaop.NavParent:
		to = el.parent
	case uiaop.NavFirstChild:
		if len(el.children) > 0 {
			to = el.children[0]
		}
	case uiaop.NavLastChild:
		if len(el.children) > 0 {
			to = el.children[len(el.children)-1]
		}
	case uiaop.NavNextSibling:
		to = sibling(el, +1)
	case uiaop.NavPreviousSibling:
		to = sibling(el, -1)
	}
	if to == nil {
		return nil, nil
	}
	return to, nil
}

func sibling(el *fakeElement, d int) *fakeElement {
	if el.parent == nil {
		return nil
	}
	sibs := el.parent.children
	for i, s := range sibs {
		if s != el {
			continue
		}
		if j := i + d; j >= 0 && j < len(sibs) {
			return sibs[j]
		}
		return nil
	}
	return nil
}

func (f *fakeProvider) GetPattern(ref uiaop.ElementRef, id uiaop.PatternID) (uiaop.PatternRef, error) {
	el, err := elemOf(ref)
	if err != nil {
		return nil, err
	}
	if err := f.log(fmt.Sprintf("pat/%s/%d", el.name, id)); err != nil {
		return nil, err
	}
	switch id {
	case uiaop.TextPatternID:
		if el.text == nil {
			return nil, nil
		}
		return el.text, nil
	case uiaop.InvokePatternID:
		if !el.invokable {
			return nil, nil
		}
		return &fakeInvoke{owner: el}, nil
	}
	return nil, fmt.Errorf("unknown pattern %d", id)
}

func (f *fakeProvider) CallMethod(target any, m uiaop.MethodID, args []any) (any, error) {
	if target == nil {
		return nil, errors.New("null pattern")
	}
	if err := f.log(fmt.Sprintf("call/%v", m)); err != nil {
		return nil, err
	}
	switch m {
	case uiaop.MethodTextGetDocumentRange:
		tp := target.(*fakeText)
		return &fakeRange{owner: tp.owner, content: tp.content}, nil
	case uiaop.MethodTextGetSupportedTextSelection:
		return target.(*fakeText).sel, nil
	case uiaop.MethodRangeGetEnclosingElement:
		return target.(*fakeRange).owner, nil
	case uiaop.MethodRangeGetText:
		r := target.(*fakeRange)
		if n := args[0].(int); n >= 0 && n < len(r.content) {
			return r.content[:n], nil
		}
		return r.content, nil
	case uiaop.MethodInvoke:
		target.(*fakeInvoke).owner.invoked++
		return nil, nil
	}
	return nil, fmt.Errorf("unknown method %v", m)
}

// calcTree is the element tree the scenario tests drive:
//
//	Calculator (window)
//	├── Display area
//	│   └── Display is 0
//	│       └── Result
//	│           └── 0 (text pattern: content "0", single selection)
//	└── Equals (invoke pattern)
type calcTree struct {
	root    *fakeElement
	display *fakeElement
	leaf    *fakeElement
	button  *fakeElement
}

func newCalcTree() *calcTree {
	root := &fakeElement{name: "Calculator", controlType: 50032, enabled: true}
	area := &fakeElement{name: "Display area", controlType: 50026, enabled: true}
	display := &fakeElement{name: "Display is 0", controlType: 50020, enabled: true}
	result := &fakeElement{name: "Result", controlType: 50026, enabled: true}
	leaf := &fakeElement{name: "0", controlType: 50020, enabled: true}
	leaf.text = &fakeText{owner: leaf, content: "0", sel: uiaop.SupportedTextSelectionSingle}
	button := &fakeElement{name: "Equals", controlType: 50000, enabled: true, invokable: true}
	attach(root, area)
	attach(area, display)
	attach(display, result)
	attach(result, leaf)
	attach(root, button)
	return &calcTree{root: root, display: display, leaf: leaf, button: button}
}

func attach(p, c *fakeElement) {
	c.parent = p
	p.children = append(p.children, c)
}

func newFake() (*fakeProvider, *calcTree) {
	return &fakeProvider{errOn: map[string]error{}}, newCalcTree()
}

// start initializes an execution context for one test and registers its
// cleanup.
func start(t testing.TB, remote bool) (*uiaop.Automation, *fakeProvider, *calcTree) {
	t.Helper()
	fp, tree := newFake()
	a, err := uiaop.Initialize(remote, fp)
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	t.Cleanup(uiaop.Cleanup)
	return a, fp, tree
}

// startScope starts a context plus one recording scope.
func startScope(t testing.TB, remote bool) (*uiaop.Scope, *fakeProvider, *calcTree) {
	t.Helper()
	a, fp, tree := start(t, remote)
	scope, err := a.StartNew()
	if err != nil {
		t.Fatalf("StartNew: %v", err)
	}
	return scope, fp, tree
}

// bind declares h bound, failing the test on error.
func bind(t testing.TB, scope *uiaop.Scope, h uiaop.Returnable) {
	t.Helper()
	if err := scope.BindResult(h); err != nil {
		t.Fatalf("BindResult: %v", err)
	}
}

// resolve runs the scope to completion, failing the test on error.
func resolve(t testing.TB, scope *uiaop.Scope) {
	t.Helper()
	if err := scope.Resolve(); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
}
