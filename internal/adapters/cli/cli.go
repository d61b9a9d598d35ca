// Package cli is the command-line adapter: cobra commands, the textual
// clue-line/board formats, and the four display layouts.
package cli

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/skyscraper/internal/domain"
	"svw.info/skyscraper/internal/generator"
	"svw.info/skyscraper/internal/solver"
	"svw.info/skyscraper/internal/usecase"
	"svw.info/skyscraper/internal/validator"
)

// ErrCheckFailed marks a check run whose board did not match the clue
// set. Main maps it to a dedicated exit code.
var ErrCheckFailed = errors.New("board does not satisfy the clue set")

// NewRootCmd wires the core components behind the command tree.
func NewRootCmd() *cobra.Command {
	s := solver.NewBacktrackingSolver()
	uc := usecase.NewService(s, generator.NewUniqueGenerator(s), validator.New(), nil)

	root := &cobra.Command{
		Use:           "skyscraper",
		Short:         "Generate, solve, and check Skyscraper puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(uc), newSolveCmd(uc), newCheckCmd(uc), newServeCmd())
	return root
}

func newGenerateCmd(uc *usecase.Service) *cobra.Command {
	var seed uint64
	var outputs []string
	cmd := &cobra.Command{
		Use:   "generate <size>",
		Short: "Generate a board with a uniquely solvable clue set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid size %q: %w", args[0], err)
			}
			if size < 1 {
				return domain.ErrInvalidSize
			}
			if !cmd.Flags().Changed("seed") {
				seed = rand.Uint64()
			}
			p, _, err := uc.Generate(cmd.Context(), size, seed)
			if err != nil {
				return err
			}
			formats, err := parseFormats(outputs)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, f := range formats {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := Render(out, &p.Board, p.Clues, f); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the deterministic board stream")
	cmd.Flags().StringArrayVarP(&outputs, "output", "o", nil,
		"output format: solution|header|header-line|both (repeatable)")
	return cmd
}

func newSolveCmd(uc *usecase.Service) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "solve <clue-line>",
		Short: "Solve a clue set and print the first board found",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := ParseClueLine(strings.Join(args, " "))
			if err != nil {
				return err
			}
			board, _, err := uc.Solve(cmd.Context(), cl)
			if err != nil {
				return err
			}
			f, err := ParseFormat(output)
			if err != nil {
				return err
			}
			return Render(cmd.OutOrStdout(), board, cl, f)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "both",
		"output format: solution|header|header-line|both")
	return cmd
}

func newCheckCmd(uc *usecase.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <clue-line>",
		Short: "Check a board from stdin against a clue set",
		Long:  "Reads an N×N board (N lines of N integers) from standard input and validates it against the given clue line.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := ParseClueLine(strings.Join(args, " "))
			if err != nil {
				return err
			}
			board, err := ParseBoard(cmd.InOrStdin(), cl.BoardSize())
			if err != nil {
				return err
			}
			rep, err := uc.Check(cmd.Context(), board, cl)
			if err != nil {
				return err
			}
			if !rep.OK() {
				return fmt.Errorf("%w: %s", ErrCheckFailed, reportMessage(rep))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
	return cmd
}

func parseFormats(outputs []string) ([]Format, error) {
	if len(outputs) == 0 {
		return []Format{FormatBoth}, nil
	}
	formats := make([]Format, len(outputs))
	for i, o := range outputs {
		f, err := ParseFormat(o)
		if err != nil {
			return nil, err
		}
		formats[i] = f
	}
	return formats, nil
}

// reportMessage renders a failed check report for the terminal.
func reportMessage(rep domain.CheckReport) string {
	switch rep.Reason {
	case domain.CheckDimensionMismatch:
		return "board dimensions do not match the clue set"
	case domain.CheckNotLatinSquare:
		if len(rep.Conflicts) > 0 {
			c := rep.Conflicts[0]
			return fmt.Sprintf("duplicate value at row %d, column %d", c.Row+1, c.Col+1)
		}
		return "board is not a latin square"
	case domain.CheckClueMismatch:
		return fmt.Sprintf("%s clue %d: expected %d visible, got %d",
			rep.Side, rep.Index+1, rep.Expected, rep.Got)
	default:
		return rep.Reason.String()
	}
}
