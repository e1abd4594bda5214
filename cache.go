// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uiaop

import "slices"

// CacheRequest is the builder handle for a prefetch declaration. It is
// recorded like any other operation but consumed during compilation, so
// it is not [Returnable] and cannot be bound as a result.
//
// Mutations advance the handle to the newly appended builder node: an
// operation the request is attached to prefetches exactly the
// properties and patterns added before the attachment.
type CacheRequest struct{ c *cell }

// AddProperty declares id for prefetch on elements produced with this
// request attached.
func (r CacheRequest) AddProperty(id PropertyID) {
	s := r.c.scope
	r.c.node = s.record(opNode(opCacheAddProperty, ShapeCache, refOp(r.c.node), litOp(id)))
}

// AddPattern declares id for prefetch on elements produced with this
// request attached. An unsupported pattern is cached as a nil reference.
func (r CacheRequest) AddPattern(id PatternID) {
	s := r.c.scope
	r.c.node = s.record(opNode(opCacheAddPattern, ShapeCache, refOp(r.c.node), litOp(id)))
}

// cacheArg validates an optional trailing cache request and returns its
// current builder node. At most one request; it must belong to s.
func cacheArg(s *Scope, req []CacheRequest) int {
	switch len(req) {
	case 0:
		return -1
	case 1:
		if req[0].c.scope != s {
			panic("uiaop: cache request belongs to another scope")
		}
		return req[0].c.node
	}
	panic("uiaop: at most one cache request per operation")
}

// cacheState accumulates cache-request mutations during a walk. Mutation
// nodes alias the builder of their build node, so in-order evaluation
// reproduces exactly the call-order snapshot semantics of recording.
type cacheState struct {
	props    []PropertyID
	patterns []PatternID
}

// snapshot freezes the builder into an immutable CacheSpec.
func (cs *cacheState) snapshot() CacheSpec {
	return CacheSpec{
		Properties: slices.Clone(cs.props),
		Patterns:   slices.Clone(cs.patterns),
	}
}

// CacheSpec is a frozen cache request: the properties and patterns to
// prefetch alongside a produced element. Compilation folds builder
// nodes away and carries CacheSpec constants in [OpBuildCache]
// instructions instead.
type CacheSpec struct {
	Properties []PropertyID
	Patterns   []PatternID
}

// evalCacheNode threads the builder through its mutation nodes. Both
// the local walk and the compiler evaluate cache nodes this way.
func evalCacheNode(n node, vals []any) any {
	switch n.kind {
	case opBuildCacheRequest:
		return &cacheState{}
	case opCacheAddProperty:
		cs := vals[n.args[0].node].(*cacheState)
		cs.props = append(cs.props, n.args[1].lit.(PropertyID))
		return cs
	default: // opCacheAddPattern
		cs := vals[n.args[0].node].(*cacheState)
		cs.patterns = append(cs.patterns, n.args[1].lit.(PatternID))
		return cs
	}
}

// prefetch assembles the cached snapshot for ref: one provider call per
// requested property and pattern, in declaration order. A nil pattern
// result is stored as present-but-unsupported.
func prefetch(p Provider, ref ElementRef, spec CacheSpec) (*CachedData, error) {
	cd := &CachedData{
		Properties: make(map[PropertyID]any, len(spec.Properties)),
		Patterns:   make(map[PatternID]PatternRef, len(spec.Patterns)),
	}
	for _, id := range spec.Properties {
		v, err := p.GetProperty(ref, id)
		if err != nil {
			return nil, err
		}
		cd.Properties[id] = v
	}
	for _, id := range spec.Patterns {
		pr, err := p.GetPattern(ref, id)
		if err != nil {
			return nil, err
		}
		cd.Patterns[id] = pr
	}
	return cd, nil
}
