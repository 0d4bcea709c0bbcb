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

// Package textio decodes dictionary and word-list files that were not
// necessarily saved as plain UTF-8: Plover dictionaries exported on
// Windows commonly carry a UTF-8 BOM, and some community word lists are
// saved in a legacy Windows code page or, for East Asian steno theories,
// GB18030.
package textio

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	gencoding "github.com/gdamore/encoding"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
)

var (
	registryLk sync.Mutex
	registry   = map[string]encoding.Encoding{
		"windows-1252": charmap.Windows1252,
		"iso8859-1":    charmap.ISO8859_1,
		"utf-16le":     unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
		"utf-16be":     unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
		// GB18030, for the rare GB18030-saved steno dictionary.
		"gb18030": simplifiedchinese.GB18030,
		// ASCII, for a dictionary file that declares itself strictly
		// 7-bit and should reject anything outside that range.
		"ascii": gencoding.ASCII,
	}
)

// RegisterEncoding adds or overrides the encoding used for name.
func RegisterEncoding(name string, enc encoding.Encoding) {
	registryLk.Lock()
	defer registryLk.Unlock()
	registry[name] = enc
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	registryLk.Lock()
	enc, ok := registry[name]
	registryLk.Unlock()
	if ok {
		return enc, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("textio: unknown character set %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("textio: unsupported character set %q", name)
	}
	return enc, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode transcodes data from the named character set into UTF-8 and
// strips a leading byte-order mark. An empty name, or "utf-8", is the
// common case and only strips the BOM.
func Decode(data []byte, name string) ([]byte, error) {
	if name == "" || strings.EqualFold(name, "utf-8") {
		return bytes.TrimPrefix(data, utf8BOM), nil
	}

	enc, err := lookupEncoding(strings.ToLower(name))
	if err != nil {
		return nil, err
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("textio: decoding as %q: %w", name, err)
	}

	return bytes.TrimPrefix(decoded, utf8BOM), nil
}
