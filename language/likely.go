// Copyright 2026 The Langneg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language

import (
	"sort"

	"github.com/fluent-go/langneg/internal/tinystr"
)

// likely is an entry of the generated expansion tables. The key packs up to
// two subtag words into a single integer; see gen.go for the layout per
// table.
type likely struct {
	key uint64
	max string
}

// Sentinel subtags meaning "no information". They are stripped to absent
// before lookup, per UTS 35.
const (
	scriptZzzz = tinystr.Str4(0x7a7a7a5a) // "Zzzz"
	regionZZ   = tinystr.Str4(0x5a5a)     // "ZZ"
)

// likelySpecial overrides the generated tables for languages whose likely
// script depends on the region in ways the per-language default gets wrong.
// Matched by full equality on language and region against tags that carry
// no script or variants.
var likelySpecial = []struct {
	lang, region tinystr.Str4
	max          string
}{
	{0x7a61, 0x5249, "az-Arab-IR"}, // az-IR
	{0x7273, 0x5552, "sr-Latn-RU"}, // sr-RU
	{0x687a, 0x4247, "zh-Hant-GB"}, // zh-GB
	{0x687a, 0x5355, "zh-Hant-US"}, // zh-US
}

// Maximize returns t with its empty language, script and region fields
// filled in with their most likely values per the CLDR likely-subtags
// registry, and reports whether the result differs from t. Variants,
// extensions and private-use subtags are preserved and do not participate
// in the lookup. If no registry entry applies, t is returned unchanged.
func (t Tag) Maximize() (Tag, bool) {
	in := t
	if t.script == scriptZzzz {
		t.script = 0
	}
	if t.region == regionZZ {
		t.region = 0
	}

	if t.script == 0 && len(t.variants) == 0 {
		for _, s := range likelySpecial {
			if t.lang == s.lang && t.region == s.region {
				t.apply(s.max)
				return t, !t.Equal(in)
			}
		}
	}

	lang := uint64(t.lang)
	script := uint64(t.script)
	region := uint64(t.region)
	if lang == 0 {
		if max, ok := searchLikely(likelyScriptRegion, region<<32|script); ok {
			t.apply(max)
			return t, !t.Equal(in)
		}
	}
	if max, ok := searchLikely(likelyLangRegion, region<<32|lang); ok {
		t.apply(max)
		return t, !t.Equal(in)
	}
	if max, ok := searchLikely(likelyLangScript, script<<32|lang); ok {
		t.apply(max)
		return t, !t.Equal(in)
	}
	if max, ok := searchLikely(likelyLang, lang); ok {
		t.apply(max)
		return t, !t.Equal(in)
	}
	if lang == 0 && region == 0 {
		if max, ok := searchLikely(likelyLangScript, script<<32); ok {
			t.apply(max)
			return t, !t.Equal(in)
		}
	}
	// No entry applies; hand back the input as-is, sentinels included.
	return in, false
}

func searchLikely(table []likely, key uint64) (string, bool) {
	i := sort.Search(len(table), func(i int) bool { return table[i].key >= key })
	if i < len(table) && table[i].key == key {
		return table[i].max, true
	}
	return "", false
}

// apply fills the absent language, script and region fields of t from max,
// which is always of the form "lang-Script-REGION".
func (t *Tag) apply(max string) {
	lang, rest, _ := nextSubtag(max)
	script, region, _ := nextSubtag(rest)
	if t.lang == 0 {
		t.lang = mustTiny4(lang)
	}
	if t.script == 0 {
		t.script = mustTiny4(script)
	}
	if t.region == 0 {
		t.region = mustTiny4(region)
	}
}

// mustTiny4 packs a subtag known to be valid. A failure means a corrupt
// generated table.
func mustTiny4(s string) tinystr.Str4 {
	v, err := tinystr.Make4(s)
	if err != nil {
		panic("language: malformed likely-subtags entry " + s)
	}
	return v
}
