// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uiaop

import (
	"fmt"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Runtime interprets compiled programs against a provider. It models
// the far end of the execution channel: in a real deployment it lives
// in the provider's process and sees whole programs, never individual
// recording steps.
type Runtime struct {
	p Provider
}

// NewRuntime creates an instruction interpreter over p.
func NewRuntime(p Provider) *Runtime {
	if p == nil {
		panic("uiaop: nil provider")
	}
	return &Runtime{p: p}
}

// run executes one program. The first failing instruction discards the
// whole run and produces a Left reply; only a complete run returns its
// result slots.
func (rt *Runtime) run(prog *Program) reply {
	regs := make([]any, prog.Regs)
	slots := make([]any, prog.Slots)
	for i := range prog.Instrs {
		in := &prog.Instrs[i]
		v, err := rt.step(in, regs)
		if err != nil {
			return kont.Left[*ProgramError, []any](&ProgramError{
				Instr: i,
				Op:    in.Op.String(),
				Err:   err,
			})
		}
		if in.Op == OpStoreResult {
			slots[in.Out] = v
		} else {
			regs[in.Out] = v
		}
	}
	return kont.Right[*ProgramError](slots)
}

func (rt *Runtime) step(in *Instr, regs []any) (any, error) {
	v, err := rt.eval(in, regs)
	if err != nil {
		return nil, err
	}
	if err = checkOutput(in.Shape, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (rt *Runtime) eval(in *Instr, regs []any) (any, error) {
	switch in.Op {
	case OpLoadElement:
		return ElementResult{Ref: in.Args[0].Lit}, nil
	case OpBuildCache:
		return in.Args[0].Lit.(CacheSpec), nil
	case OpGetProperty:
		er := argVal(regs, in.Args[0]).(ElementResult)
		return execProperty(rt.p, er, in.Args[1].Lit.(PropertyID), in.Args[2].Lit.(bool))
	case OpNavigate:
		er := argVal(regs, in.Args[0]).(ElementResult)
		return execNavigate(rt.p, er, in.Args[1].Lit.(NavigateDirection), specReg(regs, in.Cache))
	case OpGetPattern:
		er := argVal(regs, in.Args[0]).(ElementResult)
		return execPattern(rt.p, er, in.Args[1].Lit.(PatternID), in.Args[2].Lit.(bool))
	case OpInvokeMethod:
		target := argVal(regs, in.Args[0])
		m := in.Args[1].Lit.(MethodID)
		args := make([]any, 0, len(in.Args)-2)
		for _, a := range in.Args[2:] {
			args = append(args, argVal(regs, a))
		}
		return execMethod(rt.p, target, m, args, in.Shape, specReg(regs, in.Cache))
	case OpStoreResult:
		return argVal(regs, in.Args[0]), nil
	}
	return nil, fmt.Errorf("uiaop: unknown opcode %d", in.Op)
}

// argVal resolves one instruction operand against the register slab.
func argVal(regs []any, a Arg) any {
	if a.Reg >= 0 {
		return regs[a.Reg]
	}
	return a.Lit
}

// specReg reads the cache spec register, nil when no cache is attached.
func specReg(regs []any, idx int) *CacheSpec {
	if idx < 0 {
		return nil
	}
	spec := regs[idx].(CacheSpec)
	return &spec
}

// ServeOne executes at most one pending program on l and reports
// whether progress was made.
func (rt *Runtime) ServeOne(l *Link) bool {
	prog, err := l.progQ.Dequeue()
	if err != nil {
		return false
	}
	r := rt.run(prog)
	var bo iox.Backoff
	for l.replyQ.Enqueue(&r) != nil {
		bo.Wait()
	}
	return true
}

// Serve drives the runtime end of l until the link closes, backing off
// while idle. Run it on a dedicated goroutine to host the runtime the
// way a provider process would.
func (rt *Runtime) Serve(l *Link) {
	var bo iox.Backoff
	for l.closed.Load() == 0 {
		if rt.ServeOne(l) {
			bo.Reset()
			continue
		}
		bo.Wait()
	}
}
