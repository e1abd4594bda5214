// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uiaop

import "fmt"

// Opcode identifies one remote instruction.
type Opcode uint8

const (
	OpLoadElement Opcode = iota
	OpGetProperty
	OpGetPattern
	OpNavigate
	OpInvokeMethod
	OpBuildCache
	OpStoreResult
)

func (o Opcode) String() string {
	switch o {
	case OpLoadElement:
		return "load-element"
	case OpGetProperty:
		return "get-property"
	case OpGetPattern:
		return "get-pattern"
	case OpNavigate:
		return "navigate"
	case OpInvokeMethod:
		return "invoke-method"
	case OpBuildCache:
		return "build-cache"
	case OpStoreResult:
		return "store-result"
	}
	return "unknown"
}

// Arg is one instruction operand: a source register when Reg >= 0,
// otherwise the literal constant Lit.
type Arg struct {
	Reg int
	Lit any
}

func regArg(r int) Arg { return Arg{Reg: r} }
func litArg(v any) Arg { return Arg{Reg: -1, Lit: v} }

// Instr is one linear instruction. Out is the destination register, or
// the result slot for [OpStoreResult]. Cache names the register holding
// the [CacheSpec] to prefetch alongside the produced element, -1 when
// none.
type Instr struct {
	Op    Opcode
	Out   int
	Shape Shape
	Args  []Arg
	Cache int
}

// Program is one compiled scope: a dependency-ordered linear
// instruction stream over Regs virtual registers, filling Slots result
// slots. Submitted whole, executed whole.
type Program struct {
	Instrs []Instr
	Regs   int
	Slots  int
}

// remoteable reports whether m has a remote instruction encoding.
func (m MethodID) remoteable() bool {
	return m != MethodInvoke
}

func opcodeOf(k opKind) Opcode {
	switch k {
	case opImportElement:
		return OpLoadElement
	case opGetProperty:
		return OpGetProperty
	case opGetPattern:
		return OpGetPattern
	case opNavigate:
		return OpNavigate
	case opInvokeMethod:
		return OpInvokeMethod
	}
	panic("uiaop: operation has no opcode")
}

// compile lowers a recorded graph to a linear program. Nodes lower in
// recorded order, one instruction each, so the stream is dependency
// ordered by construction. Cache builder nodes emit no instructions:
// the builder folds at compile time, and each attached use emits an
// [OpBuildCache] carrying the frozen [CacheSpec] of the mutations
// recorded before the attachment. One [OpStoreResult] per bound
// declaration, slots in ascending node order.
//
// Returns [ErrNotRemoteable] when a recorded operation has no remote
// encoding; the caller submits nothing in that case.
func compile(g *graph, binds []int) (*Program, error) {
	prog := &Program{}
	regOf := make([]int, len(g.nodes))
	vals := make([]any, len(g.nodes)) // cache builders; other entries stay nil

	for i := range g.nodes {
		n := &g.nodes[i]
		regOf[i] = -1
		switch n.kind {
		case opBuildCacheRequest, opCacheAddProperty, opCacheAddPattern:
			vals[i] = evalCacheNode(*n, vals)
			continue
		case opInvokeMethod:
			if m := n.args[1].lit.(MethodID); !m.remoteable() {
				return nil, fmt.Errorf("uiaop: %v has no remote encoding: %w", m, ErrNotRemoteable)
			}
		}

		cr := -1
		if n.cache >= 0 {
			cr = prog.Regs
			prog.Regs++
			prog.Instrs = append(prog.Instrs, Instr{
				Op:    OpBuildCache,
				Out:   cr,
				Shape: ShapeCache,
				Args:  []Arg{litArg(vals[n.cache].(*cacheState).snapshot())},
				Cache: -1,
			})
		}

		args := make([]Arg, len(n.args))
		for k, o := range n.args {
			if o.node >= 0 {
				args[k] = regArg(regOf[o.node])
			} else {
				args[k] = litArg(o.lit)
			}
		}
		out := prog.Regs
		prog.Regs++
		regOf[i] = out
		prog.Instrs = append(prog.Instrs, Instr{
			Op:    opcodeOf(n.kind),
			Out:   out,
			Shape: n.out,
			Args:  args,
			Cache: cr,
		})
	}

	for slot, idx := range binds {
		prog.Instrs = append(prog.Instrs, Instr{
			Op:    OpStoreResult,
			Out:   slot,
			Shape: ShapeAny,
			Args:  []Arg{regArg(regOf[idx])},
			Cache: -1,
		})
	}
	prog.Slots = len(binds)
	return prog, nil
}
