// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uiaop

import "fmt"

// The exec primitives are the single implementation of operation
// semantics. The local walk, the eager paths on concrete handles, and
// the remote instruction interpreter all evaluate through them, so the
// two execution strategies cannot drift apart.

// execProperty reads one property, from the cached snapshot or live.
func execProperty(p Provider, er ElementResult, id PropertyID, cached bool) (any, error) {
	if cached {
		return er.cachedProp(id)
	}
	return p.GetProperty(er.Ref, id)
}

// execNavigate performs one navigation call, prefetching the attached
// cache request onto the produced element when spec is non-nil.
func execNavigate(p Provider, er ElementResult, dir NavigateDirection, spec *CacheSpec) (any, error) {
	ref, err := p.Navigate(er.Ref, dir)
	if err != nil {
		return nil, err
	}
	res := ElementResult{Ref: ref}
	if spec != nil {
		cd, err := prefetch(p, ref, *spec)
		if err != nil {
			return nil, err
		}
		res.Cached = cd
	}
	return res, nil
}

// execPattern acquires one pattern, from the cached snapshot or live.
// A nil result with nil error means the element does not support it.
func execPattern(p Provider, er ElementResult, id PatternID, cached bool) (PatternRef, error) {
	if cached {
		return er.cachedPattern(id)
	}
	return p.GetPattern(er.Ref, id)
}

// execMethod invokes one pattern or range method. Element-producing
// methods wrap the reference in an [ElementResult] and prefetch an
// attached cache request.
func execMethod(p Provider, target any, m MethodID, args []any, out Shape, spec *CacheSpec) (any, error) {
	v, err := p.CallMethod(target, m, args)
	if err != nil {
		return nil, err
	}
	if out != ShapeElement {
		return v, nil
	}
	res := ElementResult{Ref: v}
	if spec != nil {
		cd, err := prefetch(p, v, *spec)
		if err != nil {
			return nil, err
		}
		res.Cached = cd
	}
	return res, nil
}

// checkOutput validates a provider payload against the declared output
// shape of the producing operation.
func checkOutput(out Shape, v any) error {
	switch out {
	case ShapeString:
		if _, ok := v.(string); !ok {
			return fmt.Errorf("uiaop: provider returned %T, want string", v)
		}
	case ShapeBool:
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("uiaop: provider returned %T, want bool", v)
		}
	case ShapeInt:
		if _, ok := v.(int32); !ok {
			return fmt.Errorf("uiaop: provider returned %T, want int32", v)
		}
	}
	return nil
}

// evalNode executes one graph node against the provider. Cache nodes
// evaluate locally; the rest perform their provider call, plus the
// prefetch calls of an attached cache request.
func evalNode(p Provider, n node, vals []any) (any, error) {
	v, err := stepNode(p, n, vals)
	if err != nil {
		return nil, err
	}
	if err = checkOutput(n.out, v); err != nil {
		return nil, err
	}
	return v, nil
}

func stepNode(p Provider, n node, vals []any) (any, error) {
	switch n.kind {
	case opImportElement:
		return ElementResult{Ref: n.args[0].lit}, nil
	case opBuildCacheRequest, opCacheAddProperty, opCacheAddPattern:
		return evalCacheNode(n, vals), nil
	case opGetProperty:
		er := vals[n.args[0].node].(ElementResult)
		return execProperty(p, er, n.args[1].lit.(PropertyID), n.args[2].lit.(bool))
	case opNavigate:
		er := vals[n.args[0].node].(ElementResult)
		return execNavigate(p, er, n.args[1].lit.(NavigateDirection), specAt(vals, n.cache))
	case opGetPattern:
		er := vals[n.args[0].node].(ElementResult)
		return execPattern(p, er, n.args[1].lit.(PatternID), n.args[2].lit.(bool))
	case opInvokeMethod:
		target := vals[n.args[0].node]
		m := n.args[1].lit.(MethodID)
		return execMethod(p, target, m, litArgs(n.args[2:]), n.out, specAt(vals, n.cache))
	}
	panic("uiaop: unknown operation kind")
}

// specAt snapshots the cache builder at node idx, nil when no request
// is attached.
func specAt(vals []any, idx int) *CacheSpec {
	if idx < 0 {
		return nil
	}
	spec := vals[idx].(*cacheState).snapshot()
	return &spec
}

// litArgs extracts trailing literal operands as call arguments.
func litArgs(ops []operand) []any {
	if len(ops) == 0 {
		return nil
	}
	out := make([]any, len(ops))
	for i, o := range ops {
		out[i] = o.lit
	}
	return out
}
