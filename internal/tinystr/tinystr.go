// Copyright 2026 The Langneg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tinystr provides small ASCII-only bounded-length strings packed
// into machine words.
//
// A Str4 holds 1 to 4 bytes in a uint32 and a Str8 holds 1 to 8 bytes in a
// uint64. The first character occupies the least significant byte and unused
// high bytes are NUL padding, so the length of a value is its word size
// minus the number of leading zero bytes. Because a valid value always has
// at least one character, the packed word is never zero; callers use the
// zero value to represent an absent subtag.
//
// Equality and ordering are plain integer comparison of the packed word.
// In particular comparison is case-sensitive; callers that need
// case-insensitive behavior must canonicalize before storing.
package tinystr

import (
	"errors"
	"math/bits"
)

var (
	// ErrInvalidSize indicates input that is empty or exceeds the capacity.
	ErrInvalidSize = errors.New("tinystr: invalid size")
	// ErrInvalidNull indicates an embedded NUL byte. NUL is the padding
	// sentinel and cannot appear in a value.
	ErrInvalidNull = errors.New("tinystr: embedded NUL byte")
	// ErrNonASCII indicates a byte outside the ASCII range.
	ErrNonASCII = errors.New("tinystr: non-ASCII byte")
)

// Str4 is a string of 1 to 4 non-NUL ASCII characters.
type Str4 uint32

// Str8 is a string of 1 to 8 non-NUL ASCII characters.
type Str8 uint64

// Make4 packs text into a Str4. It returns an error if text is not 1 to 4
// characters in length, contains a non-ASCII byte, or contains NUL.
func Make4(text string) (Str4, error) {
	n := len(text)
	if n < 1 || n > 4 {
		return 0, ErrInvalidSize
	}
	var word uint32
	for i := 0; i < n; i++ {
		word |= uint32(text[i]) << (8 * uint(i))
	}
	// mask has the high bit of every used byte set.
	mask := uint32(0x80808080) >> (8 * uint(4-n))
	if word&mask != 0 {
		return 0, ErrNonASCII
	}
	// Since every used byte is below 0x80, 0x80-b borrows nothing from the
	// next byte, and the high bit of the difference survives only for b == 0.
	if (mask-word)&mask != 0 {
		return 0, ErrInvalidNull
	}
	return Str4(word), nil
}

// Make8 packs text into a Str8. It returns an error if text is not 1 to 8
// characters in length, contains a non-ASCII byte, or contains NUL.
func Make8(text string) (Str8, error) {
	n := len(text)
	if n < 1 || n > 8 {
		return 0, ErrInvalidSize
	}
	var word uint64
	for i := 0; i < n; i++ {
		word |= uint64(text[i]) << (8 * uint(i))
	}
	mask := uint64(0x8080808080808080) >> (8 * uint(8-n))
	if word&mask != 0 {
		return 0, ErrNonASCII
	}
	if (mask-word)&mask != 0 {
		return 0, ErrInvalidNull
	}
	return Str8(word), nil
}

// Len returns the number of characters in s.
func (s Str4) Len() int {
	return 4 - bits.LeadingZeros32(uint32(s))/8
}

// Len returns the number of characters in s.
func (s Str8) Len() int {
	return 8 - bits.LeadingZeros64(uint64(s))/8
}

func (s Str4) String() string {
	b := make([]byte, s.Len())
	for i := range b {
		b[i] = byte(s >> (8 * uint(i)))
	}
	return string(b)
}

func (s Str8) String() string {
	b := make([]byte, s.Len())
	for i := range b {
		b[i] = byte(s >> (8 * uint(i)))
	}
	return string(b)
}

// The case transforms below work on all bytes of the word at once. For each
// byte b, (b+0x1f)&^(b+0x05)&0x80 has the high bit set exactly when b is in
// 'a'..'z', and (b+0x3f)&^(b+0x25)&0x80 when b is in 'A'..'Z'. Shifting the
// selector down by 2 turns the high bit into the 0x20 case bit. No addition
// can carry into the next byte because every byte is below 0x80.

// Uppercase returns s with all lowercase ASCII letters mapped to uppercase.
func (s Str4) Uppercase() Str4 {
	w := uint32(s)
	return Str4(w &^ (((w + 0x1f1f1f1f) &^ (w + 0x05050505) & 0x80808080) >> 2))
}

// Lowercase returns s with all uppercase ASCII letters mapped to lowercase.
func (s Str4) Lowercase() Str4 {
	w := uint32(s)
	return Str4(w | ((w+0x3f3f3f3f)&^(w+0x25252525)&0x80808080)>>2)
}

// Titlecase returns s with its first character mapped to uppercase and the
// remaining characters mapped to lowercase.
func (s Str4) Titlecase() Str4 {
	w := uint32(s)
	// Select 'a'..'z' in the first byte and 'A'..'Z' elsewhere.
	m := ((w + 0x3f3f3f1f) &^ (w + 0x25252505) & 0x80808080) >> 2
	return Str4((w | m) &^ (0x20 & m))
}

// Uppercase returns s with all lowercase ASCII letters mapped to uppercase.
func (s Str8) Uppercase() Str8 {
	w := uint64(s)
	return Str8(w &^ (((w + 0x1f1f1f1f1f1f1f1f) &^ (w + 0x0505050505050505) & 0x8080808080808080) >> 2))
}

// Lowercase returns s with all uppercase ASCII letters mapped to lowercase.
func (s Str8) Lowercase() Str8 {
	w := uint64(s)
	return Str8(w | ((w+0x3f3f3f3f3f3f3f3f)&^(w+0x2525252525252525)&0x8080808080808080)>>2)
}

// Titlecase returns s with its first character mapped to uppercase and the
// remaining characters mapped to lowercase.
func (s Str8) Titlecase() Str8 {
	w := uint64(s)
	m := ((w + 0x3f3f3f3f3f3f3f1f) &^ (w + 0x2525252525252505) & 0x8080808080808080) >> 2
	return Str8((w | m) &^ (0x20 & m))
}

// IsAlpha reports whether every character of s is an ASCII letter.
func (s Str4) IsAlpha() bool {
	w := uint32(s)
	// mask selects the used (non-padding) bytes.
	mask := (w + 0x7f7f7f7f) & 0x80808080
	lower := w | 0x20202020
	return (^(lower+0x1f1f1f1f)|(lower+0x05050505))&mask == 0
}

// IsAlpha reports whether every character of s is an ASCII letter.
func (s Str8) IsAlpha() bool {
	w := uint64(s)
	mask := (w + 0x7f7f7f7f7f7f7f7f) & 0x8080808080808080
	lower := w | 0x2020202020202020
	return (^(lower+0x1f1f1f1f1f1f1f1f)|(lower+0x0505050505050505))&mask == 0
}
