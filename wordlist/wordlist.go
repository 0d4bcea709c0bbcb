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

// Package wordlist holds the immutable set of known lowercase words the
// orthography fusion step consults before applying a suffix rule.
package wordlist

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/nthand/steno/internal/textio"
)

// WordList is an immutable set of lowercase words.
type WordList struct {
	words map[string]struct{}
}

// Contains reports whether s, compared case-insensitively, is in the list.
func (w *WordList) Contains(s string) bool {
	_, ok := w.words[strings.ToLower(s)]
	return ok
}

// Len returns the number of words loaded.
func (w *WordList) Len() int {
	return len(w.words)
}

// LoadFile reads a word list from path, one lowercase word per line,
// transcoding it from the named character set first (pass "" for UTF-8).
func LoadFile(path, charset string) (*WordList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading word list %q: %w", path, err)
	}
	w, err := Load(data, charset)
	if err != nil {
		return nil, fmt.Errorf("loading word list %q: %w", path, err)
	}
	return w, nil
}

// Load parses a word list, one lowercase word per line; trailing
// whitespace on a line is trimmed.
func Load(data []byte, charset string) (*WordList, error) {
	decoded, err := textio.Decode(data, charset)
	if err != nil {
		return nil, err
	}

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(decoded))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" {
			continue
		}
		words[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning word list: %w", err)
	}

	return &WordList{words: words}, nil
}
