// Copyright 2025 The Steno Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dict

import (
	"fmt"
	"strings"
)

// ParseEntry tokenizes a dictionary value into an Entry. Text is split
// into verbatim runs and brace-delimited specials; "\{", "\}", "\\" and
// "\^" are the only recognized escapes anywhere in the value.
func ParseEntry(raw string) (Entry, error) {
	var entry Entry

	runes := []rune(raw)
	i := 0
	for i < len(runes) {
		if runes[i] == '{' {
			inner, next, err := scanSpecial(runes, i)
			if err != nil {
				return nil, err
			}
			parts, err := parseSpecial(inner)
			if err != nil {
				return nil, err
			}
			entry = append(entry, parts...)
			i = next
			continue
		}

		text, next := scanVerbatim(runes, i)
		i = next
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		unescaped, err := unescape(text)
		if err != nil {
			return nil, err
		}
		entry = append(entry, Verbatim(unescaped))
	}

	return entry, nil
}

// scanVerbatim consumes runes up to (but not including) the next
// unescaped "{", returning the raw (still-escaped) text and the index
// just past it.
func scanVerbatim(runes []rune, start int) (string, int) {
	var sb strings.Builder
	i := start
	for i < len(runes) {
		if runes[i] == '\\' && i+1 < len(runes) {
			sb.WriteRune(runes[i])
			sb.WriteRune(runes[i+1])
			i += 2
			continue
		}
		if runes[i] == '{' {
			break
		}
		sb.WriteRune(runes[i])
		i++
	}
	return sb.String(), i
}

// scanSpecial consumes a "{...}" region starting at runes[start] (which
// must be "{"), honoring backslash escapes, and returns its raw interior
// text (still escaped) and the index just past the closing brace.
func scanSpecial(runes []rune, start int) (string, int, error) {
	var sb strings.Builder
	i := start + 1
	for i < len(runes) {
		if runes[i] == '\\' && i+1 < len(runes) {
			sb.WriteRune(runes[i])
			sb.WriteRune(runes[i+1])
			i += 2
			continue
		}
		if runes[i] == '}' {
			return sb.String(), i + 1, nil
		}
		sb.WriteRune(runes[i])
		i++
	}
	return "", 0, fmt.Errorf("%w: %q", ErrUnterminatedSpecial, string(runes[start:]))
}

// countTrailingBackslashes counts the run of "\" characters at the end of
// s, so callers can tell whether a character following that run would be
// escaped (an odd count) or not (an even count, including zero).
func countTrailingBackslashes(s string) int {
	n := 0
	for n < len(s) && s[len(s)-1-n] == '\\' {
		n++
	}
	return n
}

func unescape(escaped string) (string, error) {
	var sb strings.Builder
	runes := []rune(escaped)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if ch != '\\' {
			sb.WriteRune(ch)
			continue
		}
		i++
		if i >= len(runes) {
			return "", ErrUnexpectedEOF
		}
		switch runes[i] {
		case '^', '{', '}', '\\':
			sb.WriteRune(runes[i])
		default:
			return "", fmt.Errorf("%w: %q", ErrUnknownEscape, runes[i])
		}
	}
	return sb.String(), nil
}

// parseSpecial interprets the raw (still-escaped) interior of a
// "{...}" region, per §4.2's grammar.
func parseSpecial(inner string) (Entry, error) {
	switch inner {
	case "-|":
		return Entry{SetCaps(true)}, nil
	case ">":
		return Entry{SetCaps(false)}, nil
	case "^":
		return Entry{SetSpace(false)}, nil
	case "~|":
		return Entry{CarryToNext{}}, nil
	case " ":
		return Entry{Verbatim(" ")}, nil
	}

	if name, ok := strings.CutPrefix(inner, "PLOVER:"); ok {
		cmd, ok := parsePloverCommand(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPloverCommand, name)
		}
		return Entry{cmd}, nil
	}

	if punct, ok := parseSpecialPunct(inner); ok {
		return Entry{punct}, nil
	}

	return parseDecoratedBody(inner)
}

// parseDecoratedBody handles the generic case: an optional leading "&"
// (Glue) or "^" (Suffix), a body, and an optional trailing unescaped "^"
// (append SetSpace(false) after the body).
func parseDecoratedBody(inner string) (Entry, error) {
	body := inner
	glue := false
	suffix := false

	switch {
	case strings.HasPrefix(body, "&"):
		glue = true
		body = body[1:]
	case strings.HasPrefix(body, "^"):
		suffix = true
		body = body[1:]
	}

	trailingSpace := false
	hadTrailingCaret := false
	if trimmed, ok := strings.CutSuffix(body, "^"); ok {
		hadTrailingCaret = true
		if countTrailingBackslashes(trimmed)%2 == 0 {
			trailingSpace = true
			body = trimmed
		}
	}

	if !glue && !suffix && !trailingSpace && !hadTrailingCaret {
		return nil, fmt.Errorf("%w: %q", ErrPointlessBraces, inner)
	}
	if (glue || suffix) && body == "" && !trailingSpace {
		return nil, fmt.Errorf("%w: %q", ErrPointlessBraces, inner)
	}

	text, err := unescape(body)
	if err != nil {
		return nil, err
	}

	var entry Entry
	switch {
	case suffix:
		entry = append(entry, Suffix(text))
	case glue:
		entry = append(entry, Glue(text))
	default:
		entry = append(entry, Verbatim(text))
	}

	if trailingSpace {
		entry = append(entry, SetSpace(false))
	}

	return entry, nil
}
