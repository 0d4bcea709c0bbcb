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
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nthand/steno"
	"github.com/nthand/steno/dict"
	"github.com/nthand/steno/frontend/virtualkeyboard"
	"github.com/nthand/steno/tty"
	"github.com/nthand/steno/wordlist"
)

// ErrNoCompositorBinding is returned when a frontend needs a live
// protocol connection this build has no client library for. No Wayland
// bindings exist anywhere in the retrieved example pack this repo was
// built from, so both frontends' wire protocol is reachable only
// through their Go interfaces (Compositor, Typist) and a caller-supplied
// implementation; see DESIGN.md.
var ErrNoCompositorBinding = errors.New("stenod: no protocol client binding compiled into this build")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run the engine against a frontend",
}

var inputMethodCmd = &cobra.Command{
	Use:   "input-method",
	Short: "run as a Wayland input method, translating from a physical keyboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, engine, err := newSession()
		if err != nil {
			return err
		}
		session.log.Info("input method frontend selected")
		_ = engine
		return fmt.Errorf("%w: wire frontend/inputmethod.Compositor to a Wayland input-method-v2 client", ErrNoCompositorBinding)
	},
}

var (
	flagDevicePath string
	flagProtocol   string
)

var virtualKeyboardCmd = &cobra.Command{
	Use:   "virtual-keyboard",
	Short: "run against a dedicated stenotype machine, typing into a Wayland virtual keyboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, engine, err := newSession()
		if err != nil {
			return err
		}
		if flagDevicePath != "" {
			session.cfg.DevicePath = flagDevicePath
		}
		if flagProtocol != "" {
			session.cfg.Protocol = flagProtocol
		}
		if session.cfg.Protocol != "gemini" {
			return fmt.Errorf("unrecognized steno protocol %q; supported are: gemini", session.cfg.Protocol)
		}
		if session.cfg.DevicePath == "" {
			return errors.New("virtual-keyboard frontend requires --device")
		}

		dev := tty.NewSerialDevice(session.cfg.DevicePath, virtualkeyboard.BaudRate)
		if err := dev.Start(); err != nil {
			return fmt.Errorf("opening stenotype device %q: %w", session.cfg.DevicePath, err)
		}
		defer dev.Stop()

		gemini := virtualkeyboard.NewGeminiDevice(dev)
		session.log.WithField("device", session.cfg.DevicePath).Info("virtual keyboard frontend selected")

		_ = engine
		_ = gemini
		return fmt.Errorf("%w: wire virtualkeyboard.Typist to a Wayland virtual-keyboard-v1 client", ErrNoCompositorBinding)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.AddCommand(inputMethodCmd)
	runCmd.AddCommand(virtualKeyboardCmd)

	virtualKeyboardCmd.Flags().StringVarP(&flagDevicePath, "device", "d", "", "path to the steno device in /dev")
	virtualKeyboardCmd.Flags().StringVarP(&flagProtocol, "protocol", "p", "", "protocol spoken by the steno device (default \"gemini\")")
}

// session bundles a run invocation's loaded config and a logger stamped
// with a session id, so log lines from this run can be told apart from
// those of other runs.
type session struct {
	cfg config
	log *logrus.Entry
}

func newSession() (*session, *steno.Engine, error) {
	cfg, err := loadConfigFromFlags()
	if err != nil {
		return nil, nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, nil, fmt.Errorf("generating session id: %w", err)
	}
	entry := log.WithField("session", id.String())

	d, err := dict.LoadFile(cfg.DictPath, cfg.DictEncoding)
	if err != nil {
		return nil, nil, err
	}
	entry.WithFields(logrus.Fields{"path": cfg.DictPath, "entries": d.Len()}).Info("dictionary loaded")

	w, err := wordlist.LoadFile(cfg.WordListPath, cfg.DictEncoding)
	if err != nil {
		return nil, nil, err
	}
	entry.WithFields(logrus.Fields{"path": cfg.WordListPath, "words": w.Len()}).Info("word list loaded")

	engine := steno.NewEngine(d, w)
	return &session{cfg: cfg, log: entry}, engine, nil
}
