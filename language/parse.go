// Copyright 2026 The Langneg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language

import (
	"errors"
	"fmt"
	"sort"

	"github.com/fluent-go/langneg/internal/tinystr"
)

var (
	// ErrInvalidLanguage indicates a primary language subtag of the wrong
	// shape, or non-ASCII input anywhere in the tag.
	ErrInvalidLanguage = errors.New("language: invalid language subtag")
	// ErrInvalidSubtag indicates a subtag that matches no grammar rule at
	// its position.
	ErrInvalidSubtag = errors.New("language: invalid subtag")
	// ErrSubtagTooLong indicates a subtag of more than eight characters.
	ErrSubtagTooLong = errors.New("language: subtag too long")
	// ErrDuplicateExtension indicates an extension singleton that appears
	// twice.
	ErrDuplicateExtension = errors.New("language: duplicate extension")
	// ErrEmptyExtension indicates an extension singleton with no following
	// subtags.
	ErrEmptyExtension = errors.New("language: empty extension")
	// ErrEmptyPrivateUse indicates an "x" singleton with no following
	// subtags.
	ErrEmptyPrivateUse = errors.New("language: empty private-use sequence")
)

// extensionNames maps extension singletons to their canonical names.
// Singletons not listed here keep their literal value as the name.
var extensionNames = map[string]string{
	"u": "unicode",
	"t": "transform",
}

// extensionSingleton is the inverse of extensionNames.
func extensionSingleton(name string) string {
	for s, n := range extensionNames {
		if n == name {
			return s
		}
	}
	return name
}

// Positions of the parser cursor. The grammar is positional: each subtag is
// classified by the first rule it satisfies at or after the current
// position, with script taking priority over region and region over
// variant.
const (
	posLanguage = iota
	posExtlang
	posScript
	posRegion
	posVariant
)

// Parse parses a BCP 47 language tag. It canonicalizes case as it goes:
// language and variants to lowercase, script to titlecase, region to
// uppercase. The empty string and "und" both parse to the root tag.
func Parse(s string) (Tag, error) {
	var t Tag
	if s == "" {
		return t, nil
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return Tag{}, fmt.Errorf("%w: %q", ErrInvalidLanguage, s)
		}
	}

	pos := posLanguage
	var curExt *Extension
	var curKey string
	private := false

	flushOption := func() {
		if curKey != "" {
			curExt.Options = append(curExt.Options, Option{Key: curKey})
			curKey = ""
		}
	}
	closeExt := func() error {
		if curExt == nil {
			return nil
		}
		flushOption()
		if len(curExt.Options) == 0 {
			return fmt.Errorf("%w: %q", ErrEmptyExtension, s)
		}
		t.ext = append(t.ext, *curExt)
		curExt = nil
		return nil
	}

	for rest, more := s, true; more; {
		var sub string
		sub, rest, more = nextSubtag(rest)
		if len(sub) > 8 {
			return Tag{}, fmt.Errorf("%w: %q", ErrSubtagTooLong, sub)
		}
		if sub == "" {
			// A leading, trailing or doubled separator.
			if pos == posLanguage {
				return Tag{}, fmt.Errorf("%w: %q", ErrInvalidLanguage, s)
			}
			return Tag{}, fmt.Errorf("%w: %q", ErrInvalidSubtag, s)
		}
		switch {
		case private:
			t.private = append(t.private, sub)
			continue
		case curExt != nil && len(sub) != 1:
			v, err := tinystr.Make8(sub)
			if err != nil {
				return Tag{}, fmt.Errorf("%w: %q", ErrInvalidSubtag, sub)
			}
			if curKey == "" {
				curKey = v.Lowercase().String()
			} else {
				curExt.Options = append(curExt.Options, Option{Key: curKey, Value: sub})
				curKey = ""
			}
			continue
		case len(sub) == 1:
			if err := closeExt(); err != nil {
				return Tag{}, err
			}
			c := sub[0]
			if c == 'x' || c == 'X' {
				private = true
				pos = posVariant
				continue
			}
			if !isAlpha(c) {
				return Tag{}, fmt.Errorf("%w: %q", ErrInvalidSubtag, sub)
			}
			name := sub
			if 'A' <= c && c <= 'Z' {
				name = string(c + 0x20)
			}
			if n, ok := extensionNames[name]; ok {
				name = n
			}
			for _, e := range t.ext {
				if e.Name == name {
					return Tag{}, fmt.Errorf("%w: %q", ErrDuplicateExtension, sub)
				}
			}
			curExt = &Extension{Name: name}
			pos = posVariant
			continue
		}

		v, err := tinystr.Make8(sub)
		if err != nil {
			if pos == posLanguage {
				return Tag{}, fmt.Errorf("%w: %q", ErrInvalidLanguage, sub)
			}
			return Tag{}, fmt.Errorf("%w: %q", ErrInvalidSubtag, sub)
		}
		switch {
		case pos == posLanguage:
			if len(sub) < 2 || len(sub) > 3 || !v.IsAlpha() {
				return Tag{}, fmt.Errorf("%w: %q", ErrInvalidLanguage, sub)
			}
			if lang := tinystr.Str4(v).Lowercase(); lang != langUnd {
				t.lang = lang
			}
			pos = posExtlang
		case pos <= posExtlang && len(sub) == 3 && v.IsAlpha():
			// Extended language subtags are stored but never serialized
			// or matched.
			t.extlangs = append(t.extlangs, tinystr.Str4(v).Lowercase())
		case pos <= posScript && len(sub) == 4 && v.IsAlpha():
			t.script = tinystr.Str4(v).Titlecase()
			pos = posRegion
		case pos <= posRegion && isRegion(sub, tinystr.Str4(v)):
			t.region = tinystr.Str4(v).Uppercase()
			pos = posVariant
		case pos <= posVariant && isVariant(sub, v):
			t.variants = append(t.variants, v.Lowercase())
			pos = posVariant
		default:
			return Tag{}, fmt.Errorf("%w: %q", ErrInvalidSubtag, sub)
		}
	}

	if err := closeExt(); err != nil {
		return Tag{}, err
	}
	if private && len(t.private) == 0 {
		return Tag{}, fmt.Errorf("%w: %q", ErrEmptyPrivateUse, s)
	}
	sort.Slice(t.ext, func(i, j int) bool { return t.ext[i].Name < t.ext[j].Name })
	return t, nil
}

// langUnd is "und" packed lowercase.
var langUnd = tinystr.Str4(0x646e75)

// nextSubtag returns the first subtag of s and the remainder after the
// separator. Both '-' and '_' separate subtags. more reports whether a
// separator was consumed, so a trailing separator yields one final empty
// subtag instead of vanishing.
func nextSubtag(s string) (sub, rest string, more bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '-' || s[i] == '_' {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isRegion reports whether sub is two letters or three digits.
func isRegion(sub string, v tinystr.Str4) bool {
	switch len(sub) {
	case 2:
		return v.IsAlpha()
	case 3:
		return isDigit(sub[0]) && isDigit(sub[1]) && isDigit(sub[2])
	}
	return false
}

// isVariant reports whether sub is a variant: four to eight characters
// starting with a digit, or five to eight starting with a letter.
func isVariant(sub string, v tinystr.Str8) bool {
	if len(sub) >= 5 && isAlpha(sub[0]) || len(sub) >= 4 && isDigit(sub[0]) {
		for i := 1; i < len(sub); i++ {
			if !isAlpha(sub[i]) && !isDigit(sub[i]) {
				return false
			}
		}
		return true
	}
	return false
}
