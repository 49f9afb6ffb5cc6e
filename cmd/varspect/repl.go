package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/leengari/varspect/internal/inspect"
	"github.com/leengari/varspect/internal/session"
)

const (
	historyFile = ".varspect_history"
	prompt      = ">>> "
)

const helpText = `Session commands:
  :vars            List session variables (basic view)
  :vars all        List every binding, including modules and callables
  :inspect NAME    Show the overview and members of a variable
  :inspect! NAME   Same, including non-public members
  :help            Show this help
  :quit            Exit the session

Anything else is evaluated as Go code.`

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session backed by a Go interpreter",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ins, logger, closeFn, err := setup()
			if err != nil {
				return err
			}
			defer closeFn()

			logger.Info("starting interactive session", "version", version)
			return runRepl(ins)
		},
	}
}

func runRepl(ins *inspect.Inspector) error {
	fmt.Printf("varspect %s interactive session\nType :help for commands, :quit to exit.\n", version)

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return fmt.Errorf("load interpreter stdlib: %w", err)
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(trimmed, ":") {
			if quit := runMeta(ins, i, trimmed); quit {
				return nil
			}
			continue
		}

		v, err := i.Eval(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if v.IsValid() && v.CanInterface() {
			fmt.Printf("%#v\n", v.Interface())
		}
	}
}

// runMeta executes a ":" command and reports whether the session should end.
func runMeta(ins *inspect.Inspector, i *interp.Interpreter, cmd string) bool {
	fields := strings.Fields(cmd)
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Println(helpText)
	case ":vars":
		env := session.FromYaegi(i, "main")
		all := len(fields) > 1 && fields[1] == "all"
		ins.Inspect(env, nil, all)
	case ":inspect", ":inspect!":
		if len(fields) < 2 {
			fmt.Println("usage: :inspect NAME")
			return false
		}
		env := session.FromYaegi(i, "main")
		v, ok := env.Get(fields[1])
		if !ok {
			fmt.Printf("no binding named %q in this session\n", fields[1])
			return false
		}
		if v == nil {
			fmt.Printf("%s is nil\n", fields[1])
			return false
		}
		ins.Inspect(env, v, fields[0] == ":inspect!")
	default:
		fmt.Printf("unknown command %s. Type :help for commands.\n", fields[0])
	}
	return false
}
