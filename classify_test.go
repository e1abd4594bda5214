// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package uiaop_test

import (
	"testing"

	"code.hybscloud.com/uiaop"
)

// Compile-time conformance: every handle type whose value has a wire
// encoding back from a resolution is Returnable. These assertions are
// the contract the typed BindResult surface rests on.
var (
	_ uiaop.Returnable = uiaop.Element{}
	_ uiaop.Returnable = uiaop.TextPattern{}
	_ uiaop.Returnable = uiaop.InvokePattern{}
	_ uiaop.Returnable = uiaop.TextRange{}
	_ uiaop.Returnable = uiaop.Bool{}
	_ uiaop.Returnable = uiaop.Int{}
	_ uiaop.Returnable = uiaop.String{}
)

// TestCacheRequestNotReturnable probes the one deliberate exclusion: a
// cache request is a builder consumed during compilation, so it must
// not satisfy Returnable. scope.BindResult(req) is a compile error;
// this is the closest runtime assertion of the same fact.
func TestCacheRequestNotReturnable(t *testing.T) {
	var v any = uiaop.CacheRequest{}
	if _, ok := v.(uiaop.Returnable); ok {
		t.Fatal("CacheRequest must not be bindable as a result")
	}
}

// TestFromRemoteResultShape proves a handle rejects a payload of the
// wrong shape loudly: a conforming runtime never produces one, so a
// mismatch is an invariant violation, not an error value.
func TestFromRemoteResultShape(t *testing.T) {
	scope, _, tree := startScope(t, false)
	defer scope.Abandon()

	name := scope.Import(tree.display).GetName(false)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on a mis-shaped result payload")
		}
	}()
	name.FromRemoteResult(int32(7))
}
