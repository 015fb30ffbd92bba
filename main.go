// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tfctl/auxgate/internal/command"
	"github.com/tfctl/auxgate/internal/config"
	"github.com/tfctl/auxgate/internal/log"
	"github.com/tfctl/auxgate/internal/version"
)

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// namespace returns the subcommand name, which doubles as the config
// namespace, or "" when there is none.
func namespace(args []string) string {
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		return args[1]
	}
	return ""
}

// loadConfig reads the config file and initializes the logger from it. A
// missing file is not an error, the services run on flags and environment
// alone.
func loadConfig(ns string) config.Type {
	cfg, err := config.Load()
	level, _ := cfg.WithNamespace(ns).GetString("log", "")
	log.InitLogger(level)

	if err != nil && !errors.Is(err, config.ErrNotFound) {
		log.Warnf("config file ignored: err=%v", err)
	}
	return cfg
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(ctx context.Context, args []string, cfg config.Type) int {
	app, err := command.InitApp(ctx, args, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	args := os.Args

	cfg := loadConfig(namespace(args))
	log.Debugf("auxgate %s: args=%v config=%s", version.Version, args, cfg.Source)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return initAndRunApp(ctx, args, cfg)
}
