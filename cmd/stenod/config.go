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

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds the settings a stenod run obtains from flags, optionally
// supplemented by values loaded from a YAML config file. Flags always
// win: loadConfig fills in only the fields the caller left at their
// zero value.
type config struct {
	DictPath     string `yaml:"dict_path"`
	DictEncoding string `yaml:"dict_encoding"`
	WordListPath string `yaml:"word_list_path"`
	DevicePath   string `yaml:"device_path"`
	Protocol     string `yaml:"protocol"`
}

var defaultConfig = config{
	DictPath:     "dict.json",
	DictEncoding: "utf-8",
	WordListPath: "words.txt",
	Protocol:     "gemini",
}

// loadConfig reads a YAML config file at path, if it exists, and merges
// it under flags: a field already set by a flag (non-zero in flags) is
// left alone, and any field still zero afterward falls back to
// defaultConfig. A missing config file is not an error.
func loadConfig(path string, flags config) (config, error) {
	merged := flags

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return config{}, fmt.Errorf("reading config %q: %w", path, err)
			}
		} else {
			var fromFile config
			if err := yaml.Unmarshal(data, &fromFile); err != nil {
				return config{}, fmt.Errorf("parsing config %q: %w", path, err)
			}
			merged = mergeConfig(merged, fromFile)
		}
	}

	return mergeConfig(merged, defaultConfig), nil
}

// mergeConfig fills any zero-valued field of base from fallback.
func mergeConfig(base, fallback config) config {
	if base.DictPath == "" {
		base.DictPath = fallback.DictPath
	}
	if base.DictEncoding == "" {
		base.DictEncoding = fallback.DictEncoding
	}
	if base.WordListPath == "" {
		base.WordListPath = fallback.WordListPath
	}
	if base.DevicePath == "" {
		base.DevicePath = fallback.DevicePath
	}
	if base.Protocol == "" {
		base.Protocol = fallback.Protocol
	}
	return base
}
