// Copyright 2026 The Langneg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package langneg

import (
	"strings"

	"github.com/fluent-go/langneg/language"
)

// ParseAcceptLanguage splits an Accept-Language header value into its raw
// tag strings, in header order. Quality weights are discarded rather than
// used for reordering; user agents already emit the list in preference
// order. Empty entries are dropped.
func ParseAcceptLanguage(s string) []string {
	var tags []string
	for _, entry := range strings.Split(s, ",") {
		if i := strings.IndexByte(entry, ';'); i >= 0 {
			entry = entry[:i]
		}
		entry = strings.TrimSpace(entry)
		if entry != "" {
			tags = append(tags, entry)
		}
	}
	return tags
}

// ParseAcceptLanguageTags is like ParseAcceptLanguage but parses each
// entry, silently dropping entries that are not valid language tags. The
// wildcard entry "*" is dropped as well; negotiation has no use for it.
func ParseAcceptLanguageTags(s string) []language.Tag {
	var tags []language.Tag
	for _, raw := range ParseAcceptLanguage(s) {
		if raw == "*" {
			continue
		}
		t, err := language.Parse(raw)
		if err != nil {
			continue
		}
		tags = append(tags, t)
	}
	return tags
}
