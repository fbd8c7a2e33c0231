package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sudokusolve/internal/config"
	"svw.info/sudokusolve/internal/infrastructure/puzzlefile"
	"svw.info/sudokusolve/internal/ports"
	"svw.info/sudokusolve/internal/render"
	"svw.info/sudokusolve/internal/solver"
	"svw.info/sudokusolve/internal/usecase"
	"svw.info/sudokusolve/internal/validator"
)

// Exit codes. Load failures distinguish a file named on the command line
// from the configured default.
const (
	exitUsage        = 2
	exitNamedLoad    = 3
	exitDefaultLoad  = 4
	exitInvalidBoard = 5
)

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

type options struct {
	cfgPath  string
	solver   string
	logLevel string
	unique   bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "sudoku-solve [puzzle-file]",
		Short: "Solve a 9x9 Sudoku puzzle from its text encoding",
		Long: "sudoku-solve reads a puzzle (9 lines of 9 digits, 0 = empty), prints it,\n" +
			"solves it by most-constrained-cell backtracking, and prints the result\n" +
			"with the elapsed solve time.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return &exitError{code: exitUsage, err: fmt.Errorf("expected at most one puzzle file, got %d arguments", len(args))}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.cfgPath, "config", "", "config file (sudoku.yaml if present)")
	cmd.Flags().StringVar(&opts.solver, "solver", "", "solver to use: mrv|scan")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "debug|info|warn|error")
	cmd.Flags().BoolVar(&opts.unique, "unique", false, "also report whether the solution is unique")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	explicit := opts.cfgPath != ""
	cfgPath := opts.cfgPath
	if cfgPath == "" {
		cfgPath = "sudoku.yaml"
	}
	cfg, err := config.Load(cfgPath, explicit)
	if err != nil {
		return err
	}
	if opts.solver == "" {
		opts.solver = cfg.Solver
	}
	if opts.logLevel == "" {
		opts.logLevel = cfg.LogLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), opts.logLevel)

	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(opts.solver)) {
	case "scan":
		s = solver.NewScanSolver()
	default:
		s = solver.NewBacktrackingSolver()
	}
	uc := usecase.NewService(s, validator.New(), puzzlefile.NewFS())
	ctx := cmd.Context()

	path := cfg.DefaultPuzzle
	named := len(args) == 1
	if named {
		path = args[0]
	}
	board, err := uc.Load(ctx, path)
	if err != nil {
		code := exitDefaultLoad
		if named {
			code = exitNamedLoad
		}
		logger.Error("load puzzle", "path", path, "err", err)
		return &exitError{code: code, err: err}
	}

	if ok, conflicts, verr := uc.Validate(ctx, board); verr != nil {
		return verr
	} else if !ok {
		logger.Error("puzzle violates constraints", "path", path, "conflicts", len(conflicts))
		return &exitError{code: exitInvalidBoard, err: fmt.Errorf("puzzle has %d conflicting cells", len(conflicts))}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "   Unsolved Puzzle")
	fmt.Fprintln(out, "---------------------")
	fmt.Fprint(out, render.Text(board))

	solved, st, err := uc.Solve(ctx, board)
	attempted := solved
	if err != nil {
		if !errors.Is(err, solver.ErrUnsolvable) {
			return err
		}
		attempted = board // every trial assignment was undone
	}

	fmt.Fprintln(out, "\n\n   Solved Puzzle")
	fmt.Fprintln(out, "---------------------")
	fmt.Fprint(out, render.Text(attempted))
	if err != nil {
		fmt.Fprintln(out, "\nno solution found")
	}
	fmt.Fprintf(out, "\nTime taken: %d  microseconds.\n", st.Duration.Microseconds())

	if opts.unique && err == nil {
		one, _, uerr := uc.Unique(ctx, board)
		if uerr != nil {
			return uerr
		}
		if one {
			fmt.Fprintln(out, "Solution is unique.")
		} else {
			fmt.Fprintln(out, "Solution is not unique.")
		}
	}
	logger.Debug("solve finished", "nodes", st.Nodes, "dur", st.Duration)
	return nil
}

func newLogger(w io.Writer, levelStr string) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(levelStr) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}
