// Copyright
// SPDX-License-Identifier: MIT
// codeplace: multi-buffer terminal code editor
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"codeplace/internal/config"
	"codeplace/internal/logger"
	"codeplace/internal/tui"
)

const Version = "0.3.0"

/* ---------- CLI ---------- */

func main() {
	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "help", "-h", "--help":
			if len(args) > 1 {
				helpTopic(args[1])
			} else {
				usage()
			}
			return
		case "version", "-v", "--version":
			fmt.Println("codeplace", Version)
			return
		case "init":
			cmdInit(args[1:])
			return
		case "edit":
			args = args[1:]
		}
	}
	if err := cmdEdit(args); err != nil {
		fmt.Fprintln(os.Stderr, "codeplace:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`codeplace ` + Version + `
A tabbed terminal editor. Each open file gets one tab; new files stay untitled until saved.
USAGE
  codeplace [edit] [options] [FILE ...]
  codeplace <command> [options]
COMMANDS
  edit         Open the editor (default; FILE arguments open as tabs)
  init         Write a config file with the default settings
  help         Show help (try: codeplace help edit)
  version      Print version
NOTES
  • Config is read from --config, $CODEPLACE_CONFIG or ~/.config/codeplace/config.json.
  • Any setting can be overridden from the environment, e.g. CODEPLACE_LOG_LEVEL=DEBUG.`)
}

func helpTopic(name string) {
	switch name {
	case "edit":
		fmt.Println(`USAGE
  codeplace [edit] [--config PATH] [--log-level LEVEL] [--log-file PATH] [--no-welcome] [FILE ...]
DESCRIPTION
  Opens every FILE in its own tab, in order; the last one is shown. Files that
  do not exist are reported and skipped. With no FILE, the welcome tab is shown.
OPTIONS
  --config PATH       Config file (JSON)
  --log-level LEVEL   DEBUG | INFO | WARN | ERROR (overrides config)
  --log-file PATH     Log file (overrides config; "" in config disables logging)
  --no-welcome        Do not show the welcome tab on start
KEYS
  ctrl+n new   ctrl+o open   ctrl+s save   alt+s save all   ctrl+w close
  ctrl+right next tab   ctrl+e run target   ctrl+d diff   f1 help   ctrl+q quit`)
	case "init":
		fmt.Println(`USAGE
  codeplace init [--config PATH] [--force]
DESCRIPTION
  Writes the default settings to the config file. An existing file is kept
  unless --force is given.`)
	default:
		usage()
	}
}

func cmdInit(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	fs.Usage = func() { helpTopic("init") }
	configPath := fs.String("config", "", "Config file to write")
	force := fs.Bool("force", false, "Overwrite an existing config file")
	_ = fs.Parse(args)

	path := config.Resolve(*configPath)
	if _, err := os.Stat(path); err == nil && !*force {
		fmt.Println(path, "already exists; not overwriting")
		return
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "codeplace:", err)
		os.Exit(1)
	}
	if err := config.Save(path, config.Default()); err != nil {
		fmt.Fprintln(os.Stderr, "codeplace:", err)
		os.Exit(1)
	}
	fmt.Println("Wrote", path)
}

func cmdEdit(args []string) error {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	fs.Usage = func() { helpTopic("edit") }
	configPath := fs.String("config", "", "Config file (JSON)")
	level := fs.String("log-level", "", "Log level: DEBUG|INFO|WARN|ERROR")
	logFile := fs.String("log-file", "", "Log file")
	noWelcome := fs.Bool("no-welcome", false, "Do not show the welcome tab on start")
	_ = fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *level != "" {
		cfg.Log.Level = strings.ToUpper(*level)
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}
	if *noWelcome {
		cfg.Editor.Welcome = false
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not open log file:", err)
		log = zap.NewNop()
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting",
		zap.String("version", Version),
		zap.String("config", config.Resolve(*configPath)),
		zap.Strings("files", fs.Args()))

	err = tui.Run(tui.Options{
		Config: cfg,
		Files:  fs.Args(),
		Fs:     afero.NewOsFs(),
		Log:    log,
	})
	if err != nil {
		log.Error("editor stopped", zap.Error(err))
		return err
	}
	log.Info("bye")
	return nil
}
