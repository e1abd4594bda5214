// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uiaop

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"code.hybscloud.com/lfq"
)

// linkCapacity is the bounded capacity for the program and reply
// queues. A resolution keeps at most one program in flight; 4 amortizes
// producer-side cached-index refresh cost while keeping ring buffers
// within a single cache line.
const linkCapacity = 4

// reply carries one resolution outcome back across the link: Left is
// the failing instruction's error, Right the complete result-slot
// slice. All-or-nothing by construction.
type reply = kont.Either[*ProgramError, []any]

// Link is the in-process execution channel between a resolver and a
// [Runtime]. Each direction is a bounded lock-free SPSC queue from lfq:
// the resolver owns the submit end for the duration of one resolution,
// the runtime owns the serve end.
type Link struct {
	progQ  lfq.SPSC[*Program]
	replyQ lfq.SPSC[reply]
	busy   atomix.Uint32
	closed atomix.Uint32
}

// NewLink creates an execution channel. Serve its runtime end with
// [Runtime.Serve] or [Runtime.ServeOne]; contexts created by
// [Initialize] pump their own runtime inline instead.
func NewLink() *Link {
	l := &Link{}
	l.progQ.Init(linkCapacity)
	l.replyQ.Init(linkCapacity)
	return l
}

// Close marks the link closed. Pending and future submissions fail with
// [ErrLinkClosed], and [Runtime.Serve] returns.
func (l *Link) Close() {
	l.closed.Add(1)
}

// submit ships one compiled program and blocks until its reply arrives,
// waiting past iox.ErrWouldBlock boundaries with adaptive backoff.
// pump, when non-nil, drives the bundled runtime on the calling
// goroutine between polls, keeping both queue ends single-threaded.
func (l *Link) submit(prog *Program, pump func() bool) (reply, error) {
	var zero reply
	if !l.busy.CompareAndSwap(0, 1) {
		return zero, ErrLinkBusy
	}
	defer l.busy.Store(0)

	var bo iox.Backoff
	for l.progQ.Enqueue(&prog) != nil {
		if l.closed.Load() != 0 {
			return zero, ErrLinkClosed
		}
		bo.Wait()
	}
	bo.Reset()
	for {
		r, err := l.replyQ.Dequeue()
		if err == nil {
			return r, nil
		}
		if l.closed.Load() != 0 {
			return zero, ErrLinkClosed
		}
		if pump != nil && pump() {
			bo.Reset()
			continue
		}
		bo.Wait()
	}
}
