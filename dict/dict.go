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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nthand/steno/chord"
	"github.com/nthand/steno/internal/textio"
)

// Dictionary is an immutable map from a stroke sequence to the entry it
// plays back, plus the longest key length seen at load time.
type Dictionary struct {
	entries    map[string]Entry
	maxStrokes int
}

// Get looks up strokes, returning the entry and whether it was found.
func (d *Dictionary) Get(strokes chord.Strokes) (Entry, bool) {
	e, ok := d.entries[strokes.String()]
	return e, ok
}

// MaxStrokes returns the number of strokes in the dictionary's longest key.
func (d *Dictionary) MaxStrokes() int {
	return d.maxStrokes
}

// Len returns the number of keys loaded.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Range calls fn once per loaded entry, with the stroke key in its
// canonical "/"-joined notation. Iteration order is unspecified, as for
// a plain map range.
func (d *Dictionary) Range(fn func(strokeKey string, e Entry)) {
	for k, e := range d.entries {
		fn(k, e)
	}
}

// LoadFile reads and parses a dictionary JSON file from path, transcoding
// it from the named character set first (pass "" for UTF-8).
func LoadFile(path, charset string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary %q: %w", path, err)
	}
	defer f.Close()

	d, err := Load(f, charset)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary %q: %w", path, err)
	}
	return d, nil
}

// Load parses a dictionary JSON document of string-keyed, string-valued
// pairs from r, transcoding it from the named character set first (pass
// "" for UTF-8). Duplicate stroke-sequence keys are a fatal error, since
// encoding/json's default map decoding silently lets the later one win.
func Load(r io.Reader, charset string) (*Dictionary, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}

	decoded, err := textio.Decode(raw, charset)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(decoded))

	if tok, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	} else if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("dictionary: expected a JSON object at top level")
	}

	d := &Dictionary{entries: make(map[string]Entry)}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("reading dictionary key: %w", err)
		}
		rawKey, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("dictionary: non-string key %v", keyTok)
		}

		var rawValue string
		if err := dec.Decode(&rawValue); err != nil {
			return nil, fmt.Errorf("reading dictionary value for %q: %w", rawKey, err)
		}

		strokes, err := chord.ParseStrokes(rawKey)
		if err != nil {
			return nil, fmt.Errorf("parsing dictionary key %q: %w", rawKey, err)
		}

		entry, err := ParseEntry(rawValue)
		if err != nil {
			return nil, fmt.Errorf("parsing dictionary entry %q: %w", rawKey, err)
		}

		canonical := strokes.String()
		if _, dup := d.entries[canonical]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, canonical)
		}
		d.entries[canonical] = entry

		if n := strokes.NumStrokes(); n > d.maxStrokes {
			d.maxStrokes = n
		}
	}

	return d, nil
}
