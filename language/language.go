// Copyright 2026 The Langneg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package language implements BCP 47 language tags for locale negotiation.
//
// A Tag is the parsed, canonicalized form of an identifier such as
// "en-US", "sr-Cyrl", "zh-Hant-HK" or "ca-ES-valencia-u-ca-buddhist".
// Parsing canonicalizes letter case per BCP 47 convention: languages and
// variants are lowercase, scripts are titlecase and regions are uppercase.
// The primary language subtag "und" denotes an undetermined language and
// parses to an absent language field.
//
// Tags are value types. Comparing with == is valid for tags without
// variants, extensions or private-use subtags; use Equal otherwise.
package language

import (
	"sort"
	"strings"

	"github.com/fluent-go/langneg/internal/tinystr"
)

// Tag represents a BCP 47 language tag, restricted to the subset used for
// negotiation: language, script, region, variants, extensions and
// private-use subtags. The zero value is the root tag "und".
type Tag struct {
	lang     tinystr.Str4
	script   tinystr.Str4
	region   tinystr.Str4
	extlangs []tinystr.Str4
	variants []tinystr.Str8
	ext      []Extension
	private  []string
}

// Extension is a single extension sequence of a tag, such as the Unicode
// extension "u-ca-buddhist". Options hold the key-value pairs following the
// extension name.
type Extension struct {
	Name    string
	Options []Option
}

// Option is a key-value pair within an extension sequence.
type Option struct {
	Key   string
	Value string
}

// Language returns the primary language subtag, or "" if it is "und".
func (t Tag) Language() string {
	if t.lang == 0 {
		return ""
	}
	return t.lang.String()
}

// Script returns the script subtag, or "" if absent.
func (t Tag) Script() string {
	if t.script == 0 {
		return ""
	}
	return t.script.String()
}

// Region returns the region subtag, or "" if absent.
func (t Tag) Region() string {
	if t.region == 0 {
		return ""
	}
	return t.region.String()
}

// Variants returns the variant subtags in parse order.
func (t Tag) Variants() []string {
	if len(t.variants) == 0 {
		return nil
	}
	vs := make([]string, len(t.variants))
	for i, v := range t.variants {
		vs[i] = v.String()
	}
	return vs
}

// Extensions returns the extension sequences, sorted by name.
func (t Tag) Extensions() []Extension {
	return t.ext
}

// PrivateUse returns the private-use subtags following "x", without the
// leading singleton.
func (t Tag) PrivateUse() []string {
	return t.private
}

// IsEmpty reports whether t is the root tag: no language, script, region,
// variants, extensions or private-use subtags.
func (t Tag) IsEmpty() bool {
	return t.lang == 0 && t.script == 0 && t.region == 0 &&
		len(t.variants) == 0 && len(t.ext) == 0 && len(t.private) == 0
}

// SetLanguage replaces the primary language subtag. An empty or "und"
// argument clears it.
func (t *Tag) SetLanguage(lang string) error {
	if lang == "" || strings.EqualFold(lang, "und") {
		t.lang = 0
		return nil
	}
	s, err := tinystr.Make4(lang)
	if err != nil || len(lang) < 2 || len(lang) > 3 || !s.IsAlpha() {
		return ErrInvalidLanguage
	}
	t.lang = s.Lowercase()
	return nil
}

// SetScript replaces the script subtag. An empty argument clears it.
func (t *Tag) SetScript(script string) error {
	if script == "" {
		t.script = 0
		return nil
	}
	s, err := tinystr.Make4(script)
	if err != nil || len(script) != 4 || !s.IsAlpha() {
		return ErrInvalidSubtag
	}
	t.script = s.Titlecase()
	return nil
}

// SetRegion replaces the region subtag. An empty argument clears it.
func (t *Tag) SetRegion(region string) error {
	if region == "" {
		t.region = 0
		return nil
	}
	s, err := tinystr.Make4(region)
	if err != nil || !isRegion(region, s) {
		return ErrInvalidSubtag
	}
	t.region = s.Uppercase()
	return nil
}

// ClearRegion removes the region subtag.
func (t *Tag) ClearRegion() {
	t.region = 0
}

// AddVariant appends a variant subtag if it is not already present.
func (t *Tag) AddVariant(variant string) error {
	s, err := tinystr.Make8(variant)
	if err != nil || !isVariant(variant, s) {
		return ErrInvalidSubtag
	}
	s = s.Lowercase()
	for _, v := range t.variants {
		if v == s {
			return nil
		}
	}
	t.variants = append(t.variants, s)
	return nil
}

// RemoveVariant removes a variant subtag if present.
func (t *Tag) RemoveVariant(variant string) {
	s, err := tinystr.Make8(variant)
	if err != nil {
		return
	}
	s = s.Lowercase()
	for i, v := range t.variants {
		if v == s {
			t.variants = append(t.variants[:i:i], t.variants[i+1:]...)
			return
		}
	}
}

// ClearVariants removes all variant subtags.
func (t *Tag) ClearVariants() {
	t.variants = nil
}

// AddExtension adds an extension sequence, replacing any existing sequence
// with the same name. The slice of extensions stays sorted by name.
func (t *Tag) AddExtension(e Extension) {
	for i, x := range t.ext {
		if x.Name == e.Name {
			t.ext[i] = e
			return
		}
	}
	t.ext = append(t.ext, e)
	sort.Slice(t.ext, func(i, j int) bool { return t.ext[i].Name < t.ext[j].Name })
}

// Equal reports whether t and o are the same tag, including variants,
// extensions and private-use subtags.
func (t Tag) Equal(o Tag) bool {
	if t.lang != o.lang || t.script != o.script || t.region != o.region {
		return false
	}
	if len(t.extlangs) != len(o.extlangs) ||
		len(t.variants) != len(o.variants) ||
		len(t.ext) != len(o.ext) ||
		len(t.private) != len(o.private) {
		return false
	}
	for i, v := range t.extlangs {
		if v != o.extlangs[i] {
			return false
		}
	}
	for i, v := range t.variants {
		if v != o.variants[i] {
			return false
		}
	}
	for i, e := range t.ext {
		x := o.ext[i]
		if e.Name != x.Name || len(e.Options) != len(x.Options) {
			return false
		}
		for j, opt := range e.Options {
			if opt != x.Options[j] {
				return false
			}
		}
	}
	for i, p := range t.private {
		if p != o.private[i] {
			return false
		}
	}
	return true
}

// Matches reports whether t matches o field by field over language, script,
// region and variants. A field matches when the values are equal, or when
// the corresponding side is treated as a range and its field is absent.
// Variants are compared as a whole list. Extensions and private-use subtags
// do not participate.
func (t Tag) Matches(o Tag, selfRange, otherRange bool) bool {
	if !subtagMatches(uint64(t.lang), uint64(o.lang), selfRange, otherRange) {
		return false
	}
	if !subtagMatches(uint64(t.script), uint64(o.script), selfRange, otherRange) {
		return false
	}
	if !subtagMatches(uint64(t.region), uint64(o.region), selfRange, otherRange) {
		return false
	}
	if selfRange && len(t.variants) == 0 || otherRange && len(o.variants) == 0 {
		return true
	}
	if len(t.variants) != len(o.variants) {
		return false
	}
	for i, v := range t.variants {
		if v != o.variants[i] {
			return false
		}
	}
	return true
}

func subtagMatches(a, b uint64, aRange, bRange bool) bool {
	return aRange && a == 0 || bRange && b == 0 || a == b
}

// String returns the canonical serialization of t. The root tag serializes
// as "und".
func (t Tag) String() string {
	var b strings.Builder
	if t.lang == 0 {
		b.WriteString("und")
	} else {
		b.WriteString(t.lang.String())
	}
	if t.script != 0 {
		b.WriteByte('-')
		b.WriteString(t.script.String())
	}
	if t.region != 0 {
		b.WriteByte('-')
		b.WriteString(t.region.String())
	}
	for _, v := range t.variants {
		b.WriteByte('-')
		b.WriteString(v.String())
	}
	for _, e := range t.ext {
		b.WriteByte('-')
		b.WriteString(extensionSingleton(e.Name))
		for _, opt := range e.Options {
			b.WriteByte('-')
			b.WriteString(opt.Key)
			if opt.Value != "" {
				b.WriteByte('-')
				b.WriteString(opt.Value)
			}
		}
	}
	if len(t.private) > 0 {
		b.WriteString("-x")
		for _, p := range t.private {
			b.WriteByte('-')
			b.WriteString(p)
		}
	}
	return b.String()
}
