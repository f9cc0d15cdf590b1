// Copyright 2026 The Langneg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package langneg implements language negotiation between the locales a
// user requests and the locales an application has available.
//
// Negotiation runs each requested tag through a sequence of matching
// stages of decreasing precision, from exact comparison down to a
// same-language match that ignores region entirely, consulting the CLDR
// likely-subtags registry to fill in missing script and region
// information along the way. The chosen Strategy controls how eagerly
// the stages are cut short.
//
// A typical server-side use negotiates the tags of an Accept-Language
// header against the application's translation list:
//
//	requested := langneg.ParseAcceptLanguageTags(r.Header.Get("Accept-Language"))
//	available := []language.Tag{language.MustParse("en-US"), language.MustParse("de")}
//	matched := langneg.Negotiate(requested, available, &available[0], langneg.Filtering)
package langneg

import (
	"github.com/fluent-go/langneg/language"
)

// Strategy selects how much of the stage sequence and the requested list
// negotiation consumes once matches are found.
type Strategy int

const (
	// Filtering collects every available match for every requested tag,
	// across all stages. Use it when all acceptable locales are wanted,
	// ordered by preference.
	Filtering Strategy = iota
	// Matching collects matches from only the first stage that yields any
	// for each requested tag, then moves to the next requested tag.
	Matching
	// Lookup stops the whole negotiation at the first match and returns
	// only that one tag. Use it when exactly one locale must be chosen.
	Lookup
)

// Negotiate matches requested tags against available tags and returns the
// matched subset of available, ordered by discovery: preference order of
// requested first, then stage precision, then the original order of
// available. Each available tag is returned at most once.
//
// If def is non-nil it acts as a default: under Lookup it is appended only
// when nothing matched; under Filtering and Matching it is appended unless
// an equal tag is already present.
func Negotiate(requested, available []language.Tag, def *language.Tag, strategy Strategy) []language.Tag {
	matches := filterMatches(requested, available, strategy)
	if def == nil {
		return matches
	}
	if strategy == Lookup {
		if len(matches) == 0 {
			matches = append(matches, *def)
		}
		return matches
	}
	for _, m := range matches {
		if m.Equal(*def) {
			return matches
		}
	}
	return append(matches, *def)
}

// filterMatches runs the stage sequence for each requested tag against the
// pool of not-yet-matched available tags.
//
// The stages, in order of decreasing precision:
//
//  1. exact field-by-field comparison
//  2. absent fields of the available tag treated as wildcards
//  3. stage 2 against the likely-subtags expansion of the requested tag
//  4. variants cleared, absent fields on either side treated as wildcards
//  5. region cleared and re-expanded, available-side wildcards
//  6. region cleared, either-side wildcards
//
// Matched pool entries are removed so no available tag matches twice, and
// the pool keeps its original order throughout.
func filterMatches(requested, available []language.Tag, strategy Strategy) []language.Tag {
	var matches []language.Tag
	pool := make([]int, len(available))
	for i := range pool {
		pool[i] = i
	}

	// take moves pool entries accepted by pred into matches and reports
	// whether there was at least one. Filtering collects every match in
	// the stage; Matching and Lookup take only the first.
	take := func(pred func(language.Tag) bool) bool {
		found := false
		kept := pool[:0]
		for _, i := range pool {
			if (strategy == Filtering || !found) && pred(available[i]) {
				matches = append(matches, available[i])
				found = true
			} else {
				kept = append(kept, i)
			}
		}
		pool = kept
		return found
	}
	availableAsRange := func(req language.Tag) bool {
		return take(func(a language.Tag) bool { return a.Matches(req, true, false) })
	}
	bothAsRange := func(req language.Tag) bool {
		return take(func(a language.Tag) bool { return a.Matches(req, true, true) })
	}

outer:
	for _, req := range requested {
		if len(pool) == 0 {
			break
		}

		if take(func(a language.Tag) bool { return a.Matches(req, false, false) }) {
			switch strategy {
			case Matching:
				continue outer
			case Lookup:
				break outer
			}
		}

		if availableAsRange(req) {
			switch strategy {
			case Matching:
				continue outer
			case Lookup:
				break outer
			}
		}

		// A language-less request has nothing to maximize, and the
		// wildcard stages below would accept the whole pool for it.
		if req.Language() == "" {
			continue
		}

		if max, changed := req.Maximize(); changed {
			req = max
			if availableAsRange(req) {
				switch strategy {
				case Matching:
					continue outer
				case Lookup:
					break outer
				}
			}
		}

		req.ClearVariants()
		if bothAsRange(req) {
			switch strategy {
			case Matching:
				continue outer
			case Lookup:
				break outer
			}
		}

		req.ClearRegion()
		if max, changed := req.Maximize(); changed {
			req = max
			if availableAsRange(req) {
				switch strategy {
				case Matching:
					continue outer
				case Lookup:
					break outer
				}
			}
		}

		req.ClearRegion()
		if bothAsRange(req) {
			switch strategy {
			case Lookup:
				break outer
			}
		}
	}
	return matches
}
