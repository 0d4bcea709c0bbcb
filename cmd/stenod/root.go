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

// Command stenod runs the steno translation engine against one of its
// frontends, or inspects a dictionary from the command line.
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.StandardLogger()

var (
	configPath string

	flagDictPath     string
	flagDictEncoding string
	flagWordListPath string
)

var rootCmd = &cobra.Command{
	Use:          "stenod",
	Short:        "stenod translates stenotype chords into text edits",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file merged under these flags")
	rootCmd.PersistentFlags().StringVarP(&flagDictPath, "dict", "D", "", "path to the dictionary JSON (default \"dict.json\")")
	rootCmd.PersistentFlags().StringVar(&flagDictEncoding, "dict-encoding", "", "character encoding of the dictionary file (default \"utf-8\")")
	rootCmd.PersistentFlags().StringVarP(&flagWordListPath, "word-list", "W", "", "path to the word list (default \"words.txt\")")
}

func loadConfigFromFlags() (config, error) {
	return loadConfig(configPath, config{
		DictPath:     flagDictPath,
		DictEncoding: flagDictEncoding,
		WordListPath: flagWordListPath,
	})
}

// Execute runs the stenod command tree, as invoked from main.
func Execute() error {
	return rootCmd.Execute()
}
