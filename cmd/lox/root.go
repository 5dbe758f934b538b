package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/loxwalk/internal/interpreter"
	"github.com/aledsdavies/loxwalk/internal/lexer"
	"github.com/aledsdavies/loxwalk/internal/parser"
	"github.com/aledsdavies/loxwalk/internal/printer"
	"github.com/aledsdavies/loxwalk/internal/token"
)

// Exit codes, per the command-line surface's error taxonomy.
const (
	exitSuccess    = 0
	exitUsageError = 1
	exitDataErr    = 65 // scanner or parse error
	exitRuntimeErr = 70 // runtime (type) error
)

// exitError lets a subcommand's RunE carry an explicit process exit code
// back through cobra without cobra printing its own usage text for it.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit %d", e.code) }

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lox <command> <filename>",
		Short:         "Scan, parse, or evaluate a single Lox expression",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newTokenizeCmd())
	root.AddCommand(newParseCmd())
	root.AddCommand(newEvaluateCmd())
	return root
}

func readSource(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func newTokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <filename>",
		Short: "Print one token per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
				return &exitError{code: exitUsageError}
			}
			tokens := lexer.Tokenize(src)
			hadError := false
			for _, tok := range tokens {
				switch tok.Kind {
				case token.Unknown:
					fmt.Fprintf(os.Stderr, "[line %d] Error: Unexpected character: %s\n", tok.Pos.Line, tok.Lexeme)
					hadError = true
				case token.UnterminatedString:
					fmt.Fprintf(os.Stderr, "[line %d] Error: Unterminated string.\n", tok.Pos.Line)
					hadError = true
				default:
					fmt.Fprintln(cmd.OutOrStdout(), formatTokenLine(tok))
				}
			}
			if hadError {
				return &exitError{code: exitDataErr}
			}
			return nil
		},
	}
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <filename>",
		Short: "Print the parsed expression as a parenthesized prefix dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
				return &exitError{code: exitUsageError}
			}
			expr, err := parser.Parse(src)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return &exitError{code: exitDataErr}
			}
			fmt.Fprintln(cmd.OutOrStdout(), printer.Print(expr))
			return nil
		},
	}
}

func newEvaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate <filename>",
		Short: "Evaluate the expression and print its value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
				return &exitError{code: exitUsageError}
			}
			expr, err := parser.Parse(src)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return &exitError{code: exitDataErr}
			}
			value, err := interpreter.Eval(expr)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return &exitError{code: exitRuntimeErr}
			}
			fmt.Fprintln(cmd.OutOrStdout(), value.String())
			return nil
		},
	}
}

// formatTokenLine renders a single token the way "tokenize" prints it:
// "<UPPERCASE_KIND> <lexeme> <literal>".
func formatTokenLine(tok token.Token) string {
	switch tok.Kind {
	case token.String:
		return fmt.Sprintf("%s %s %s", tok.Kind, tok.Lexeme, tok.Text)
	case token.Number:
		return fmt.Sprintf("%s %s %s", tok.Kind, tok.Lexeme, formatTokenNumber(tok.Literal))
	default:
		return fmt.Sprintf("%s %s null", tok.Kind, tok.Lexeme)
	}
}

// formatTokenNumber renders a numeric literal with at least one decimal
// place, per the tokenize output format (42 -> "42.0", 3.14 -> "3.14").
func formatTokenNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
