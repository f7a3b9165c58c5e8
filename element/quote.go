/**
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
'License'); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at
http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
'AS IS' BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

package element

import "strings"

// unquotePlaceholder stands in for an escaped backslash while the other escapes are resolved.
const unquotePlaceholder = "\u569f"

// NeedsQuotes reports whether s must be quoted to survive a round trip.
func NeedsQuotes(s string) bool {
	if s == "" {
		return true
	}
	hasSlash := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.', c == '*', c == '_':
		case c == '/':
			hasSlash = true
		default:
			return true
		}
	}
	if hasSlash {
		if strings.Contains(s, "//") || strings.Contains(s, "/*") || strings.Contains(s, "*/") {
			return true
		}
	}
	return false
}

// Quote wraps s in double quotes, escaping backslashes, quotes and newlines.
func Quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}

func QuoteIfNeeded(s string) string {
	if NeedsQuotes(s) {
		return Quote(s)
	}
	return s
}

// Unquote strips the surrounding quotes of a quoted token and resolves its escapes.
// Strings that are not quoted are returned as is.
func Unquote(s string) string {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	return Unescape(s[1 : len(s)-1])
}

// Unescape resolves the escapes of a quoted string body. An escaped backslash is parked on a
// placeholder first so that `\\n` is not read as a newline.
func Unescape(s string) string {
	s = strings.ReplaceAll(s, `\\`, unquotePlaceholder)
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\n`, "\n")
	return strings.ReplaceAll(s, unquotePlaceholder, `\`)
}
