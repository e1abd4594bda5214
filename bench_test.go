// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uiaop_test

import (
	"testing"

	"code.hybscloud.com/uiaop"
)

// BenchmarkRecordAbandon measures pure recording cost: one scope, a
// short operation chain, no execution.
func BenchmarkRecordAbandon(b *testing.B) {
	a, fp, tree := start(b, false)
	b.ReportAllocs()
	for b.Loop() {
		fp.calls = fp.calls[:0]
		scope, err := a.StartNew()
		if err != nil {
			b.Fatal(err)
		}
		element := scope.Import(tree.display)
		element.GetParentElement().GetParentElement().GetName(false)
		element.GetIsEnabled(false)
		scope.Abandon()
	}
}

// BenchmarkResolveLocal measures a record-bind-resolve cycle in local
// mode.
func BenchmarkResolveLocal(b *testing.B) {
	a, fp, tree := start(b, false)
	b.ReportAllocs()
	for b.Loop() {
		fp.calls = fp.calls[:0]
		scope, err := a.StartNew()
		if err != nil {
			b.Fatal(err)
		}
		name := scope.Import(tree.display).GetParentElement().GetName(false)
		if err := scope.BindResult(name); err != nil {
			b.Fatal(err)
		}
		if err := scope.Resolve(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkResolveRemote measures the same cycle through compilation,
// the link round trip, and the instruction interpreter.
func BenchmarkResolveRemote(b *testing.B) {
	skipRace(b)
	a, fp, tree := start(b, true)
	b.ReportAllocs()
	for b.Loop() {
		fp.calls = fp.calls[:0]
		scope, err := a.StartNew()
		if err != nil {
			b.Fatal(err)
		}
		name := scope.Import(tree.display).GetParentElement().GetName(false)
		if err := scope.BindResult(name); err != nil {
			b.Fatal(err)
		}
		if err := scope.Resolve(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkResolveRemoteCached adds an attached cache request to the
// remote cycle: the compiler folds the builder, the runtime prefetches.
func BenchmarkResolveRemoteCached(b *testing.B) {
	skipRace(b)
	a, fp, tree := start(b, true)
	b.ReportAllocs()
	for b.Loop() {
		fp.calls = fp.calls[:0]
		scope, err := a.StartNew()
		if err != nil {
			b.Fatal(err)
		}
		req := scope.NewCacheRequest()
		req.AddProperty(uiaop.NameProperty)
		req.AddPattern(uiaop.TextPatternID)
		cached := scope.Import(tree.display).GetParentElement(req)
		if err := scope.BindResult(cached); err != nil {
			b.Fatal(err)
		}
		if err := scope.Resolve(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDirectGetName measures the eager scope-free path.
func BenchmarkDirectGetName(b *testing.B) {
	a, fp, tree := start(b, false)
	b.ReportAllocs()
	for b.Loop() {
		fp.calls = fp.calls[:0]
		if _, err := a.Element(tree.display).GetName(false).Get(); err != nil {
			b.Fatal(err)
		}
	}
}
