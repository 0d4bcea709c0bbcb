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

// Package orthography fuses a word with a following suffix according to a
// fixed, ordered table of English spelling rules (e.g. cherry + -s →
// cherries).
package orthography

import "regexp"

type rule struct {
	re          *regexp.Regexp
	replacement string
}

// rulesRaw is (previous-word-tail pattern, suffix-head pattern,
// replacement template), in priority order. Each pair is compiled as a
// single regexp over "prev\x00suffix": the NUL byte can't occur in
// either half of real input, so it anchors the match exactly at the
// fusion boundary without needing explicit ^/$ anchors.
var rulesRaw = [...][3]string{
	{"ic", "ly", "ically"},
	{"te", "ry", "tory"},
	{"te?", "cy", "cy"},
	{"s(h?)", "s", "s${1}es"},
	{"e([ae])?ch", "s", "e${1}ches"},
	{"y", "s", "ies"},
	{"y", "ed", "ied"},
	{"ie", "ing", "ying"},
	{"y", "ist", "ist"},
	{"y", "ful", "iful"},
	{"te", "en", "tten"},
	{"e", "(en|ed|ing)", "$1"},
	{"ee", "e", "ee"},
	{"([aeiou])([gbtnr])", "([ei])", "$1$2$2$3"},
}

var rules = compileRules()

func compileRules() []rule {
	rules := make([]rule, len(rulesRaw))
	for i, r := range rulesRaw {
		prevTail, suffixHead, replacement := r[0], r[1], r[2]
		rules[i] = rule{
			re:          regexp.MustCompile(prevTail + "\x00" + suffixHead),
			replacement: replacement,
		}
	}
	return rules
}

// Apply fuses prev and suffix, returning the result and true if some rule
// matched. The first matching rule in table order wins.
func Apply(prev, suffix string) (string, bool) {
	concat := prev + "\x00" + suffix
	for _, r := range rules {
		loc := r.re.FindStringSubmatchIndex(concat)
		if loc == nil {
			continue
		}
		buf := append([]byte(nil), concat[:loc[0]]...)
		buf = r.re.ExpandString(buf, r.replacement, concat, loc)
		buf = append(buf, concat[loc[1]:]...)
		return string(buf), true
	}
	return "", false
}
