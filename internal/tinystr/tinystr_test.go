// Copyright 2026 The Langneg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tinystr

import "testing"

func TestMake4(t *testing.T) {
	tests := []struct {
		in   string
		want Str4
		err  error
	}{
		{"en", 0x6e65, nil},
		{"Latn", 0x6e74614c, nil},
		{"US", 0x5355, nil},
		{"a", 0x61, nil},
		{"", 0, ErrInvalidSize},
		{"Latin", 0, ErrInvalidSize},
		{"a\x00b", 0, ErrInvalidNull},
		{"én", 0, ErrNonASCII},
	}
	for _, tt := range tests {
		got, err := Make4(tt.in)
		if got != tt.want || err != tt.err {
			t.Errorf("Make4(%q) = %#x, %v; want %#x, %v", tt.in, got, err, tt.want, tt.err)
		}
	}
}

func TestMake8(t *testing.T) {
	tests := []struct {
		in   string
		want Str8
		err  error
	}{
		{"valencia", 0x6169636e656c6176, nil},
		{"posix", 0x7869736f70, nil},
		{"x", 0x78, nil},
		{"", 0, ErrInvalidSize},
		{"overlong1", 0, ErrInvalidSize},
		{"abc\x00def", 0, ErrInvalidNull},
		{"café", 0, ErrNonASCII},
	}
	for _, tt := range tests {
		got, err := Make8(tt.in)
		if got != tt.want || err != tt.err {
			t.Errorf("Make8(%q) = %#x, %v; want %#x, %v", tt.in, got, err, tt.want, tt.err)
		}
	}
}

func TestRoundtrip(t *testing.T) {
	for _, s := range []string{"a", "en", "und", "Latn", "US", "419", "valencia", "fonipa", "x"} {
		if len(s) <= 4 {
			v, err := Make4(s)
			if err != nil {
				t.Errorf("Make4(%q): unexpected error %v", s, err)
				continue
			}
			if got := v.String(); got != s || v.Len() != len(s) {
				t.Errorf("Make4(%q).String() = %q, Len() = %d", s, got, v.Len())
			}
		}
		v, err := Make8(s)
		if err != nil {
			t.Errorf("Make8(%q): unexpected error %v", s, err)
			continue
		}
		if got := v.String(); got != s || v.Len() != len(s) {
			t.Errorf("Make8(%q).String() = %q, Len() = %d", s, got, v.Len())
		}
	}
}

func TestCase4(t *testing.T) {
	tests := []struct {
		in, upper, lower, title string
	}{
		{"en", "EN", "en", "En"},
		{"LATN", "LATN", "latn", "Latn"},
		{"latn", "LATN", "latn", "Latn"},
		{"lAtN", "LATN", "latn", "Latn"},
		{"us", "US", "us", "Us"},
		{"419", "419", "419", "419"},
		{"a1B2", "A1B2", "a1b2", "A1b2"},
	}
	for _, tt := range tests {
		v, err := Make4(tt.in)
		if err != nil {
			t.Fatalf("Make4(%q): %v", tt.in, err)
		}
		if got := v.Uppercase().String(); got != tt.upper {
			t.Errorf("Uppercase(%q) = %q; want %q", tt.in, got, tt.upper)
		}
		if got := v.Lowercase().String(); got != tt.lower {
			t.Errorf("Lowercase(%q) = %q; want %q", tt.in, got, tt.lower)
		}
		if got := v.Titlecase().String(); got != tt.title {
			t.Errorf("Titlecase(%q) = %q; want %q", tt.in, got, tt.title)
		}
	}
}

func TestCase8(t *testing.T) {
	tests := []struct {
		in, upper, lower, title string
	}{
		{"valencia", "VALENCIA", "valencia", "Valencia"},
		{"POSIX", "POSIX", "posix", "Posix"},
		{"nedis", "NEDIS", "nedis", "Nedis"},
		{"1994", "1994", "1994", "1994"},
	}
	for _, tt := range tests {
		v, err := Make8(tt.in)
		if err != nil {
			t.Fatalf("Make8(%q): %v", tt.in, err)
		}
		if got := v.Uppercase().String(); got != tt.upper {
			t.Errorf("Uppercase(%q) = %q; want %q", tt.in, got, tt.upper)
		}
		if got := v.Lowercase().String(); got != tt.lower {
			t.Errorf("Lowercase(%q) = %q; want %q", tt.in, got, tt.lower)
		}
		if got := v.Titlecase().String(); got != tt.title {
			t.Errorf("Titlecase(%q) = %q; want %q", tt.in, got, tt.title)
		}
	}
}

func TestIsAlpha(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"en", true},
		{"Latn", true},
		{"US", true},
		{"419", false},
		{"a1", false},
		{"e-", false},
	}
	for _, tt := range tests {
		v, err := Make4(tt.in)
		if err != nil {
			t.Fatalf("Make4(%q): %v", tt.in, err)
		}
		if got := v.IsAlpha(); got != tt.want {
			t.Errorf("IsAlpha(%q) = %v; want %v", tt.in, got, tt.want)
		}
		w, err := Make8(tt.in)
		if err != nil {
			t.Fatalf("Make8(%q): %v", tt.in, err)
		}
		if got := w.IsAlpha(); got != tt.want {
			t.Errorf("Str8 IsAlpha(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestOrdering(t *testing.T) {
	// Packing is little-endian, so integer order is not lexicographic order.
	// The likely-subtag tables rely only on a consistent total order.
	a, _ := Make4("az")
	b, _ := Make4("en")
	if a == b {
		t.Fatal("distinct strings compare equal")
	}
	if a.String() == b.String() {
		t.Fatal("round-trip collision")
	}
}
