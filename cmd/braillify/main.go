// Command braillify transcodes UTF-8 Korean text (from stdin, an argument,
// or a file) into Unicode Braille Patterns text.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/hangulbraille/braillify"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags; it stays "dev" otherwise.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:     "braillify [text]",
		Short:   "Transcode Korean text into Korean braille",
		Version: version,
		Long: "braillify reads text (from an argument, a file, or stdin) and writes its\n" +
			"Korean braille transcription as Unicode Braille Patterns characters.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && inputFile == "" {
				return runREPL(cmd.InOrStdin(), cmd.OutOrStdout())
			}
			text, err := readInput(args, inputFile)
			if err != nil {
				return err
			}
			out, err := braillify.EncodeToUnicode(text)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "read input text from a file instead of stdin/argument")
	cmd.AddCommand(newDiffCmd())
	return cmd
}

// newDiffCmd compares the transcription of two input texts and reports a
// structural diff when they differ, useful when checking a change against
// a previously recorded golden transcription.
func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff-check <text> <golden>",
		Short: "Compare a transcription against a golden value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			got, err := braillify.EncodeToUnicode(args[0])
			if err != nil {
				return err
			}
			if diff := cmp.Diff(args[1], got); diff != "" {
				return fmt.Errorf("transcription mismatch (-golden +got):\n%s", diff)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "match")
			return nil
		},
	}
}

func readInput(args []string, inputFile string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", inputFile, err)
	}
	return string(data), nil
}

// runREPL reads lines from in until EOF, transcoding and printing each one
// as it arrives rather than buffering the whole input first — a line's
// englishIndicator is derived from that line alone, so a later line can't
// retroactively change how an earlier one was rendered.
func runREPL(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		encoded, err := braillify.EncodeToUnicode(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Fprintln(out, encoded)
	}
	return scanner.Err()
}
