// SPDX-License-Identifier: MIT
//
// Copyright (C) 2024 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

const stdIOPath = "-"

var messageFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "message",
		Aliases: []string{"m"},
		Usage:   "message, as a literal string",
	},
	&cli.StringFlag{
		Name:  "message-hex",
		Usage: "message, hex encoded",
	},
	&cli.StringFlag{
		Name:  "message-file",
		Usage: "path of a file holding the raw message, or '-' for stdin",
	},
}

func getFileOrStdin(path string) (io.ReadCloser, error) {
	if path == stdIOPath {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return file, nil
}

// readMessage returns the message given by exactly one of the message flags.
func readMessage(cctx *cli.Context) ([]byte, error) {
	set := 0
	for _, name := range []string{"message", "message-hex", "message-file"} {
		if cctx.IsSet(name) {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("exactly one of --message, --message-hex, or --message-file is required")
	}

	switch {
	case cctx.IsSet("message-hex"):
		m, err := hex.DecodeString(cctx.String("message-hex"))
		if err != nil {
			return nil, fmt.Errorf("invalid hex message: %w", err)
		}
		return m, nil
	case cctx.IsSet("message-file"):
		f, err := getFileOrStdin(cctx.String("message-file"))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	default:
		return []byte(cctx.String("message")), nil
	}
}

// decodeHexArg decodes a hex flag value of an expected byte length.
func decodeHexArg(name, value string, length int) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("invalid hex for %s: %w", name, err)
	}
	if len(b) != length {
		return nil, fmt.Errorf("%s must be %d bytes, got %d", name, length, len(b))
	}
	return b, nil
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
