// Copyright 2026 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package street

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var accents = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u")

// Fold replaces the lowercase acute vowels with their plain form.  No other
// character is touched.
func Fold(s string) string {
	return accents.Replace(s)
}

// StreetType extracts the leading street type of a name: the longest run of
// non-space characters, optionally followed by a period, that ends on a word
// boundary.  It behaves like the pattern `^\S+\.?\b` with Unicode word
// characters, so "avda. x" yields "avda" and "c/ x" yields "c".
func StreetType(name string) (string, bool) {
	run := name
	if i := strings.IndexFunc(name, unicode.IsSpace); i >= 0 {
		run = name[:i]
	}

	for end := len(run); end > 0; {
		if end < len(run) && run[end] == '.' && wordBoundary(name, end+1) {
			return name[:end+1], true
		}

		if wordBoundary(name, end) {
			return name[:end], true
		}

		_, size := utf8.DecodeLastRuneInString(run[:end])
		end -= size
	}

	return "", false
}

// wordBoundary reports whether exactly one side of byte offset i is a word
// character.
func wordBoundary(s string, i int) bool {
	before, after := false, false

	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = isWordRune(r)
	}

	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = isWordRune(r)
	}

	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
