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

package shape

//go:generate stringer -type=KeyClass -trimprefix=Key

import (
	"strings"
)

// problemChars are the characters that make a tag key irregular.
const problemChars = "=+/&<>;'\"?%#$@,. \t\r\n"

// KeyClass is an enumeration of the shapes a tag key can take.
type KeyClass int

const (
	// KeyUnsupported is a key of no known shape, e.g. with upper case
	// letters, digits or more than one colon.
	KeyUnsupported KeyClass = iota

	// KeySimple is made of lower case letters and underscores only.
	KeySimple

	// KeyNamespaced is two simple segments joined by a colon.
	KeyNamespaced

	// KeyIrregular contains a problem character.
	KeyIrregular
)

// ClassifyKey returns the class of a tag key.  Namespaced keys also return
// their prefix and suffix.
func ClassifyKey(key string) (class KeyClass, prefix, suffix string) {
	if strings.ContainsAny(key, problemChars) {
		return KeyIrregular, "", ""
	}

	if isSimple(key) {
		return KeySimple, "", ""
	}

	prefix, suffix, found := strings.Cut(key, ":")
	if found && isSimple(prefix) && isSimple(suffix) {
		return KeyNamespaced, prefix, suffix
	}

	return KeyUnsupported, "", ""
}

func isSimple(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '_' && (c < 'a' || c > 'z') {
			return false
		}
	}

	return true
}
