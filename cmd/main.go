package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/asl-lang/asl/asl"
	"github.com/asl-lang/asl/asl/ast"
	"github.com/asl-lang/asl/asl/diagnostic"
	aslErrors "github.com/asl-lang/asl/asl/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

const programName = "asl"
const version = "latest"

func fileValidator(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("Expected exactly one argument <file>")
	}
	return nil
}

func colorOutput() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// loadProgram prints syntax errors as diagnostics.
func loadProgram(path string) (*ast.Program, error) {
	program, err := asl.LoadProgram(path)
	if err != nil {
		var syntaxErr *aslErrors.Error
		if errors.As(err, &syntaxErr) {
			fmt.Print(diagnostic.FromError(*syntaxErr).Display(colorOutput()))
			return nil, cli.Exit("", 1)
		}
		return nil, err
	}
	return &program, nil
}

func configFromFlags(ctx *cli.Context) (asl.Config, func() error, error) {
	config := asl.DefaultConfig()
	cleanup := func() error { return nil }

	if ctx.IsSet("seed") {
		config.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("stack-limit") {
		config.CallStackLimit = ctx.Uint("stack-limit")
	}
	if ctx.IsSet("frames") {
		config.StackTraceFrames = ctx.Int("frames")
	}
	if ctx.Bool("verbose") {
		config.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
			Level(zerolog.TraceLevel).
			With().
			Timestamp().
			Logger()
	}

	if path := ctx.String("trace"); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return config, cleanup, err
		}
		config.Trace = file
		cleanup = file.Close
	}

	return config, cleanup, nil
}

func main() {
	// nolint:exhaustruct
	app := &cli.App{
		Name:     programName,
		Version:  version,
		Usage:    "Interpreter for table-oriented scripts given as serialized syntax trees",
		Compiled: time.Now(),
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Run the main function of a program",
				ArgsUsage: "[file]",
				Args:      true,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "trace",
						Usage:   "Write a trace of all function calls to this file",
						Aliases: []string{"t"},
					},
					&cli.Int64Flag{
						Name:    "seed",
						Usage:   "Random seed used by `sample` and `sort`",
						Aliases: []string{"s"},
					},
					&cli.UintFlag{
						Name:  "stack-limit",
						Usage: "Maximum number of nested function calls",
					},
					&cli.IntFlag{
						Name:  "frames",
						Usage: "Number of stack frames shown in error messages",
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Usage:   "Enables debug logging to stderr",
						Aliases: []string{"v"},
					},
				},
				Before: fileValidator,
				Action: func(ctx *cli.Context) error {
					program, err := loadProgram(ctx.Args().First())
					if err != nil {
						return err
					}

					config, cleanup, err := configFromFlags(ctx)
					if err != nil {
						return err
					}
					defer cleanup()

					if _, d := asl.Run(*program, asl.NewOSExecutor(), config); d != nil {
						fmt.Print(d.Display(colorOutput()))
						return cli.Exit("", 1)
					}

					return nil
				},
			},
			{
				Name:      "dump",
				Usage:     "Print the decoded syntax tree of a program",
				ArgsUsage: "[file]",
				Args:      true,
				Before:    fileValidator,
				Action: func(ctx *cli.Context) error {
					program, err := loadProgram(ctx.Args().First())
					if err != nil {
						return err
					}
					spew.Dump(*program)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
