// Copyright 2026 The Langneg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language

// MustParse is like Parse, but panics if the given tag cannot be parsed.
// It simplifies safe initialization of Tag values.
func MustParse(s string) Tag {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

var (
	// Und is the root language tag with all fields absent.
	Und Tag

	English         = MustParse("en")
	AmericanEnglish = MustParse("en-US")
	BritishEnglish  = MustParse("en-GB")
	German          = MustParse("de")
	French          = MustParse("fr")
	Spanish         = MustParse("es")
	Chinese         = MustParse("zh")
	Japanese        = MustParse("ja")
)
