// Copyright 2026 The Langneg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language

import "testing"

func TestSetters(t *testing.T) {
	var tag Tag
	if err := tag.SetLanguage("EN"); err != nil {
		t.Fatal(err)
	}
	if err := tag.SetScript("latn"); err != nil {
		t.Fatal(err)
	}
	if err := tag.SetRegion("us"); err != nil {
		t.Fatal(err)
	}
	if err := tag.AddVariant("MACOS"); err != nil {
		t.Fatal(err)
	}
	if got, want := tag.String(), "en-Latn-US-macos"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}

	if err := tag.SetLanguage("und"); err != nil {
		t.Fatal(err)
	}
	if got := tag.Language(); got != "" {
		t.Errorf("Language() = %q after setting und; want \"\"", got)
	}
	tag.RemoveVariant("macos")
	if got := tag.Variants(); got != nil {
		t.Errorf("Variants() = %q after removal; want nil", got)
	}
	tag.ClearRegion()
	if got := tag.Region(); got != "" {
		t.Errorf("Region() = %q after ClearRegion; want \"\"", got)
	}
}

func TestSetterErrors(t *testing.T) {
	var tag Tag
	for _, lang := range []string{"a", "1234", "läng", "toolong"} {
		if err := tag.SetLanguage(lang); err == nil {
			t.Errorf("SetLanguage(%q): no error", lang)
		}
	}
	for _, script := range []string{"la", "latin", "l4tn"} {
		if err := tag.SetScript(script); err == nil {
			t.Errorf("SetScript(%q): no error", script)
		}
	}
	for _, region := range []string{"u", "usa", "4192", "4a"} {
		if err := tag.SetRegion(region); err == nil {
			t.Errorf("SetRegion(%q): no error", region)
		}
	}
	for _, variant := range []string{"abc", "va ria", "waytoolong"} {
		if err := tag.AddVariant(variant); err == nil {
			t.Errorf("AddVariant(%q): no error", variant)
		}
	}
}

func TestAddVariantDuplicate(t *testing.T) {
	tag := MustParse("sl-rozaj")
	if err := tag.AddVariant("ROZAJ"); err != nil {
		t.Fatal(err)
	}
	if got, want := len(tag.Variants()), 1; got != want {
		t.Errorf("len(Variants()) = %d; want %d", got, want)
	}
}

func TestAddExtension(t *testing.T) {
	tag := MustParse("en")
	tag.AddExtension(Extension{Name: "unicode", Options: []Option{{"hc", "h12"}}})
	tag.AddExtension(Extension{Name: "transform", Options: []Option{{"hi", ""}}})
	if got, want := tag.String(), "en-t-hi-u-hc-h12"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
	tag.AddExtension(Extension{Name: "unicode", Options: []Option{{"ca", "buddhist"}}})
	if got, want := tag.String(), "en-t-hi-u-ca-buddhist"; got != want {
		t.Errorf("String() = %q after replacement; want %q", got, want)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"en-US", "en-US", true},
		{"en-US", "EN-us", true},
		{"en-US", "en", false},
		{"en", "und", false},
		{"und", "", true},
		{"sl-rozaj-biske", "sl-rozaj-biske", true},
		{"sl-rozaj-biske", "sl-biske-rozaj", false},
		{"de-u-hc-h12", "de-u-hc-h12", true},
		{"de-u-hc-h12", "de-u-hc-h23", false},
		{"de-u-hc-h12", "de", false},
		{"en-x-foo", "en-x-foo", true},
		{"en-x-foo", "en-x-bar", false},
	}
	for _, tt := range tests {
		a, b := MustParse(tt.a), MustParse(tt.b)
		if got := a.Equal(b); got != tt.want {
			t.Errorf("Equal(%q, %q) = %v; want %v", tt.a, tt.b, got, tt.want)
		}
		if got := b.Equal(a); got != tt.want {
			t.Errorf("Equal(%q, %q) = %v; want %v", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		a, b           string
		aRange, bRange bool
		want           bool
	}{
		{"en-US", "en-US", false, false, true},
		{"en-US", "en", false, false, false},
		{"en", "en-US", true, false, true},
		{"en-US", "en", true, false, false},
		{"en-US", "en", false, true, true},
		{"en-US", "en-GB", true, true, false},
		{"en", "en-Latn-US", true, false, true},
		{"de", "en", true, true, false},
		{"und", "en-US", true, false, true},
		{"sl-nedis", "sl", false, true, true},
		{"sl-nedis", "sl", true, false, false},
		{"sl-nedis", "sl-rozaj", true, true, false},
		{"sl-IT-nedis", "sl-IT-nedis", false, false, true},
		{"de-u-hc-h12", "de", false, false, true},
	}
	for _, tt := range tests {
		a, b := MustParse(tt.a), MustParse(tt.b)
		if got := a.Matches(b, tt.aRange, tt.bRange); got != tt.want {
			t.Errorf("Matches(%q, %q, %v, %v) = %v; want %v",
				tt.a, tt.b, tt.aRange, tt.bRange, got, tt.want)
		}
	}
}

func TestIsEmpty(t *testing.T) {
	if !Und.IsEmpty() {
		t.Error("Und.IsEmpty() = false")
	}
	for _, s := range []string{"en", "und-US", "und-Latn", "und-nedis", "und-x-foo"} {
		if MustParse(s).IsEmpty() {
			t.Errorf("MustParse(%q).IsEmpty() = true", s)
		}
	}
}
