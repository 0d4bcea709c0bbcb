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
	"sort"

	"github.com/alecthomas/repr"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/nthand/steno/dict"
)

var flagStatsDebug bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "print a histogram of dictionary entries by stroke count",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigFromFlags()
		if err != nil {
			return err
		}

		d, err := dict.LoadFile(cfg.DictPath, cfg.DictEncoding)
		if err != nil {
			return err
		}

		printStats(cmd, d)

		if flagStatsDebug {
			fmt.Fprintln(cmd.OutOrStdout(), repr.String(d, repr.Indent("  ")))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&flagStatsDebug, "debug", false, "also print the loaded dictionary via repr.String")
}

func strokeCount(key string) int {
	n := 1
	for _, ch := range key {
		if ch == '/' {
			n++
		}
	}
	return n
}

func printStats(cmd *cobra.Command, d *dict.Dictionary) {
	histogram := map[int]int{}
	d.Range(func(key string, _ dict.Entry) {
		histogram[strokeCount(key)]++
	})

	counts := make([]int, 0, len(histogram))
	for n := range histogram {
		counts = append(counts, n)
	}
	sort.Ints(counts)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d entries, max %d strokes\n\n", d.Len(), d.MaxStrokes())

	header := [2]string{"strokes", "entries"}
	rows := make([][2]string, 0, len(counts))
	widths := [2]int{runewidth.StringWidth(header[0]), runewidth.StringWidth(header[1])}
	for _, n := range counts {
		row := [2]string{fmt.Sprint(n), fmt.Sprint(histogram[n])}
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
		rows = append(rows, row)
	}

	printRow := func(row [2]string) {
		fmt.Fprintf(out, "%s  %s\n",
			runewidth.FillRight(row[0], widths[0]),
			runewidth.FillRight(row[1], widths[1]))
	}
	printRow(header)
	for _, row := range rows {
		printRow(row)
	}
}
