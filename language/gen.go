// Copyright 2026 The Langneg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// This program generates tables.go from the CLDR likely-subtags registry.
// Invoke as
//
//	go run gen.go -version 47 -output tables.go
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"go/format"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
)

var (
	version = flag.String("version", "47", "CLDR version to fetch")
	output  = flag.String("output", "tables.go", "output file")
	url     = flag.String("url",
		"https://raw.githubusercontent.com/unicode-org/cldr-json/%s.0.0/cldr-json/cldr-core/supplemental/likelySubtags.json",
		"URL template for the likely-subtags registry")
)

type entry struct {
	key     uint64
	max     string
	comment string
}

func main() {
	log.SetPrefix("gen: ")
	log.SetFlags(0)
	flag.Parse()

	resp, err := http.Get(fmt.Sprintf(*url, *version))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("fetching registry: %s", resp.Status)
	}
	var registry struct {
		Supplemental struct {
			LikelySubtags map[string]string `json:"likelySubtags"`
		} `json:"supplemental"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&registry); err != nil {
		log.Fatal(err)
	}

	var scriptRegion, langRegion, langScript, langOnly []entry
	for from, to := range registry.Supplemental.LikelySubtags {
		lang, script, region, ok := split(from)
		if !ok {
			log.Printf("skipping key %q", from)
			continue
		}
		e := entry{max: to, comment: from}
		switch {
		case lang == "" && script != "" && region != "":
			e.key = word(region)<<32 | word(script)
			scriptRegion = append(scriptRegion, e)
		case region != "":
			e.key = word(region)<<32 | word(lang)
			langRegion = append(langRegion, e)
		case script != "":
			e.key = word(script)<<32 | word(lang)
			langScript = append(langScript, e)
		case lang != "":
			e.key = word(lang)
			langOnly = append(langOnly, e)
		}
	}

	w := new(bytes.Buffer)
	fmt.Fprintln(w, "// Copyright 2026 The Langneg Authors. All rights reserved.")
	fmt.Fprintln(w, "// Use of this source code is governed by a BSD-style")
	fmt.Fprintln(w, "// license that can be found in the LICENSE file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "// Code generated by gen.go. DO NOT EDIT.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "package language")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "// cldrVersion is the version of the CLDR likely-subtags registry the")
	fmt.Fprintln(w, "// tables below were generated from.")
	fmt.Fprintf(w, "const cldrVersion = %q\n", *version)
	writeTable(w, "likelyScriptRegion", scriptRegion,
		"maps script+region keys with no language to their\n// likely full tag. Sorted ascending by key.")
	writeTable(w, "likelyLangRegion", langRegion,
		"maps language+region keys to their likely full tag.\n// Entries with an undetermined language use a zero language word.")
	writeTable(w, "likelyLangScript", langScript,
		"maps language+script keys to their likely full tag.\n// Entries with an undetermined language use a zero language word.")
	writeTable(w, "likelyLang", langOnly,
		"maps bare language keys to their likely full tag.")

	src, err := format.Source(w.Bytes())
	if err != nil {
		log.Fatalf("formatting output: %v", err)
	}
	if err := os.WriteFile(*output, src, 0644); err != nil {
		log.Fatal(err)
	}
}

func writeTable(w *bytes.Buffer, name string, entries []entry, doc string) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	for i := 1; i < len(entries); i++ {
		if entries[i].key == entries[i-1].key {
			log.Fatalf("%s: duplicate key %#x (%s, %s)",
				name, entries[i].key, entries[i-1].comment, entries[i].comment)
		}
	}
	fmt.Fprintf(w, "\n// %s %s\nvar %s = []likely{\n", name, doc, name)
	for _, e := range entries {
		fmt.Fprintf(w, "\t{0x%016x, %q}, // %s\n", e.key, e.max, e.comment)
	}
	fmt.Fprintln(w, "}")
}

// split breaks a registry key such as "und-Arab-CC" into its fields. The
// bare "und" key is skipped; maximizing the root tag to a concrete locale
// would defeat wildcard semantics in negotiation.
func split(key string) (lang, script, region string, ok bool) {
	parts := strings.Split(key, "-")
	if parts[0] != "und" {
		lang = parts[0]
	}
	for _, p := range parts[1:] {
		switch {
		case len(p) == 4:
			script = p
		case len(p) == 2 || len(p) == 3:
			region = p
		default:
			return "", "", "", false
		}
	}
	if lang == "" && script == "" && region == "" {
		return "", "", "", false
	}
	return lang, script, region, true
}

// word packs a subtag into an integer, first character in the least
// significant byte.
func word(s string) uint64 {
	var w uint64
	for i := 0; i < len(s); i++ {
		w |= uint64(s[i]) << (8 * uint(i))
	}
	return w
}
