// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uiaop

// opKind enumerates the recordable operations.
type opKind uint8

const (
	opImportElement opKind = iota
	opGetProperty
	opNavigate
	opGetPattern
	opInvokeMethod
	opBuildCacheRequest
	opCacheAddProperty
	opCacheAddPattern
)

func (k opKind) String() string {
	switch k {
	case opImportElement:
		return "import-element"
	case opGetProperty:
		return "get-property"
	case opNavigate:
		return "navigate"
	case opGetPattern:
		return "get-pattern"
	case opInvokeMethod:
		return "invoke-method"
	case opBuildCacheRequest:
		return "build-cache-request"
	case opCacheAddProperty:
		return "cache-add-property"
	case opCacheAddPattern:
		return "cache-add-pattern"
	}
	return "unknown"
}

// Shape declares the payload class an operation or instruction produces.
// Execution validates provider payloads against the declared shape.
type Shape uint8

const (
	ShapeAny Shape = iota
	ShapeUnit
	ShapeBool
	ShapeInt
	ShapeString
	ShapeElement
	ShapePattern
	ShapeRange
	ShapeCache
)

// operand is one node input: a reference to an earlier node's output
// when node >= 0, otherwise the literal constant lit.
type operand struct {
	node int
	lit  any
}

func refOp(idx int) operand { return operand{node: idx} }
func litOp(v any) operand   { return operand{node: -1, lit: v} }

// node is one recorded operation. cache names the cache-request builder
// node whose snapshot is prefetched for the produced element, -1 when
// none is attached.
type node struct {
	kind  opKind
	out   Shape
	args  []operand
	cache int
}

func opNode(kind opKind, out Shape, args ...operand) node {
	return node{kind: kind, out: out, args: args, cache: -1}
}

func (n node) withCache(idx int) node {
	n.cache = idx
	return n
}

// graph is the append-only recording. Insertion order is execution
// order; nodes are never reordered, deduplicated, or removed.
type graph struct {
	nodes []node
}

// append adds n and returns its index. Operand and cache references
// must point at earlier nodes.
func (g *graph) append(n node) int {
	idx := len(g.nodes)
	for _, o := range n.args {
		if o.node >= idx {
			panic("uiaop: operand references a later node")
		}
	}
	if n.cache >= idx {
		panic("uiaop: cache request references a later node")
	}
	g.nodes = append(g.nodes, n)
	return idx
}
