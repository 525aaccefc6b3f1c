package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/maxcountryman/mage/internal/config"
	"github.com/maxcountryman/mage/internal/history"
	"github.com/maxcountryman/mage/lang"
	"github.com/pkg/errors"
)

var (
	configPath string
	debug      bool
)

func main() {
	flag.StringVar(&configPath, "config", "", "path to a mage.toml config file (default ~/.mage.toml)")
	flag.BoolVar(&debug, "debug", false, "log diagnostics and print full error causes")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelFor(debug),
	}))

	cfg, err := config.Load(configPath)
	if err != nil {
		atExit(err)
	}
	logger.Debug("loaded config", "history_path", cfg.HistoryPath, "history_limit", cfg.HistoryLimit)

	hist, err := history.Load(cfg.HistoryPath, cfg.HistoryLimit)
	if err != nil {
		atExit(err)
	}

	ns := lang.FindOrCreateNamespace(lang.InternSymbol("user"))
	macros := lang.NewMacroTable()

	fmt.Println("Mage 0.0.1")
	fmt.Println()

	runREPL(os.Stdin, os.Stdout, ns, macros, hist, cfg, logger)
}

func levelFor(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// runREPL implements spec.md §6's REPL surface: read a line, keep reading
// while brackets are unbalanced, submit one form through
// Reader -> Expander -> Evaluator, print the result. Grounded on
// original_source/repl.py's main loop.
func runREPL(in io.Reader, out io.Writer, ns *lang.Namespace, macros *lang.MacroTable, hist *history.History, cfg *config.Config, logger *slog.Logger) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, cfg.Prompt)
		line, ok := readLine(scanner)
		if !ok {
			fmt.Fprintln(out)
			return
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "exit" || trimmed == "quit" {
			fmt.Fprintln(out, "Bye for now!")
			return
		}

		for unbalanced(line) {
			fmt.Fprint(out, strings.Repeat(" ", len(cfg.Prompt)-3)+".. ")
			next, ok := readLine(scanner)
			if !ok {
				break
			}
			line += "\n" + next
		}

		if err := hist.Append(line); err != nil {
			logger.Debug("failed to persist history", "error", err)
		}

		result, err := evalLine(line, ns, macros)
		if err != nil {
			printError(out, err, debug)
			continue
		}
		if result == nil {
			fmt.Fprintln(out, "nil")
		} else {
			fmt.Fprintln(out, lang.PrintString(result))
		}
	}
}

func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}

// evalLine runs the three-stage pipeline spec.md §1 describes: read,
// expand, evaluate.
func evalLine(line string, ns *lang.Namespace, macros *lang.MacroTable) (interface{}, error) {
	rd := lang.NewReader(strings.NewReader(line))
	form, err := rd.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	expanded, err := lang.Expand(form, ns, macros)
	if err != nil {
		return nil, err
	}
	return lang.Eval(expanded, ns)
}

// unbalanced reports whether line has unclosed ( [ { delimiters,
// transliterated from original_source/repl.py's unbalanced.
func unbalanced(line string) bool {
	matches := map[rune]rune{')': '(', ']': '[', '}': '{'}
	var stack []rune
	for _, c := range line {
		switch c {
		case '(', '[', '{':
			stack = append(stack, c)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != matches[c] {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) > 0
}

func printError(out io.Writer, err error, debug bool) {
	if debug {
		fmt.Fprintf(out, "%v\n", err)
		if le, ok := err.(*lang.LangError); ok {
			fmt.Fprintf(out, "%+v\n", le.Err)
		}
		return
	}
	fmt.Fprintf(out, "%v\n", err)
}

func atExit(err error) {
	fmt.Fprintln(os.Stderr, errors.Cause(err))
	os.Exit(1)
}
