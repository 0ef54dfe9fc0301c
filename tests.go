// SPDX-FileCopyrightText: 2024 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

//go:build !release

package bidimap

import "testing"

// TestConsistency is an helper to check that the two indices of a
// bidirectional map mirror each other and agree with the pair storage.
func (bi *Map[K, V]) TestConsistency(t *testing.T) {
	t.Helper()
	if len(bi.forward) != len(bi.inverse) {
		t.Errorf("index sizes differ: forward %d, inverse %d",
			len(bi.forward), len(bi.inverse))
	}
	if got := bi.pairs.Len(); got != len(bi.forward) {
		t.Errorf("pair storage holds %d pairs, indices hold %d",
			got, len(bi.forward))
	}
	for k, ref := range bi.forward {
		p := bi.pairs.Get(ref)
		if p.key != k {
			t.Errorf("forward entry %v references a pair keyed %v", k, p.key)
		}
		iref, ok := bi.inverse[p.value]
		if !ok {
			t.Errorf("no inverse entry mirroring %v → %v", k, p.value)
		} else if iref != ref {
			t.Errorf("forward entry %v and inverse entry %v reference different pairs",
				k, p.value)
		}
	}
}
