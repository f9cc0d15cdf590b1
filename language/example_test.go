// Copyright 2026 The Langneg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package language_test

import (
	"fmt"

	"github.com/fluent-go/langneg/language"
)

func ExampleParse() {
	tag, err := language.Parse("SR_cyrl-rs")
	if err != nil {
		panic(err)
	}
	fmt.Println(tag)
	// Output: sr-Cyrl-RS
}

func ExampleTag_Maximize() {
	tag := language.MustParse("zh-TW")
	max, _ := tag.Maximize()
	fmt.Println(max)
	// Output: zh-Hant-TW
}
