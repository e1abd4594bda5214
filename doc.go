// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package uiaop records UI-automation operations against proxy handles
// and executes the recording either as immediate provider calls or as a
// compiled instruction program shipped across an execution channel in a
// single round trip.
//
// Client code looks the same in both modes: record operations, declare
// which results must come back, resolve once.
//
// # Architecture
//
//   - Recording: [Scope] captures operations as an append-only graph. Proxy handles ([Element], [TextPattern], [TextRange], value handles) are symbolic references to node outputs until resolution materializes them.
//   - Local execution: one provider call per node, in recorded order. A failure aborts the walk; earlier results stay materialized.
//   - Remote execution: the graph compiles to a [Program] of linear instructions, submitted once over a [Link] of bounded lock-free SPSC queues via [code.hybscloud.com/lfq]. The reply is [code.hybscloud.com/kont.Either]: all result slots or none.
//   - Capability: [Returnable] is the compile-time gate on [Scope.BindResult]; a [CacheRequest] is consumed during compilation and cannot be bound.
//   - Non-blocking: queue operations return [code.hybscloud.com/iox.ErrWouldBlock] on backpressure; submit and serve wait with adaptive backoff.
//
// # API Topology
//
//   - Context: [Initialize], [InitializeHosted], [Cleanup], [Automation.StartNew], [Automation.Element].
//   - Recording: [Scope.Import], [Scope.NewCacheRequest], proxy-handle methods, [Scope.BindResult].
//   - Resolution: [Scope.Resolve], [Scope.Abandon]; terminal Get accessors on handles.
//   - Hosting: [NewLink], [NewRuntime], [Runtime.Serve], [Runtime.ServeOne] run the instruction interpreter at the far end of a link.
//
// # Example
//
//	a, _ := uiaop.Initialize(true, provider)
//	defer uiaop.Cleanup()
//
//	scope, _ := a.StartNew()
//	element := scope.Import(ref)
//	name := element.GetParentElement().GetName(false)
//	_ = scope.BindResult(name)
//	if err := scope.Resolve(); err != nil {
//		return err
//	}
//	s, _ := name.Get()
package uiaop
