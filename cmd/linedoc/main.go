package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/jorge-barreto/linedoc/internal/config"
	"github.com/jorge-barreto/linedoc/internal/docs"
	"github.com/jorge-barreto/linedoc/internal/driver"
	"github.com/jorge-barreto/linedoc/internal/report"
	"github.com/jorge-barreto/linedoc/internal/scaffold"
	"github.com/jorge-barreto/linedoc/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:        "linedoc",
		Usage:       "Extract marked line blocks into a Markdown document tree",
		Description: "Run 'linedoc docs' for documentation on the header grammar, output layout, and more.",
		Commands: []*cli.Command{
			extractCmd(),
			checkCmd(),
			initCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func pipelineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "dir", Usage: "Scan root (required)"},
		&cli.StringFlag{Name: "work", Usage: "Destination root, created if absent (required)"},
		&cli.StringFlag{Name: "start", Usage: "Block marker prefix, e.g. '//#' (required)"},
		&cli.StringFlag{Name: "path", Usage: "Dot-separated label whitelist, e.g. PERSON.INVOICE.ITEM (required)"},
		&cli.StringFlag{Name: "ext", Usage: "File extension filter, e.g. .go (required)"},
		&cli.StringFlag{Name: "config", Usage: "Settings file (flags override)", Value: ".linedoc.yaml"},
	}
}

func extractCmd() *cli.Command {
	return &cli.Command{
		Name:  "extract",
		Usage: "Scan the tree and write the document hierarchy",
		Flags: append(pipelineFlags(),
			&cli.StringFlag{Name: "report", Usage: "Write a YAML run report to this path"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runPipeline(ctx, cmd, false)
		},
	}
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Scan and validate without writing any documents",
		Flags: append(pipelineFlags(),
			&cli.StringFlag{Name: "report", Usage: "Write a YAML run report to this path"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runPipeline(ctx, cmd, true)
		},
	}
}

func runPipeline(ctx context.Context, cmd *cli.Command, dryRun bool) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	ux.ScanHeader(settings.ScanRoot, settings.Ext, settings.WorkRoot)

	d := &driver.Driver{
		Settings: settings,
		Report:   report.New(settings.ScanRoot, settings.WorkRoot),
		DryRun:   dryRun,
	}
	runErr := d.Run(ctx)

	if path := cmd.String("report"); path != "" {
		if saveErr := d.Report.Save(path); saveErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save report: %v\n", saveErr)
		}
	}
	if runErr != nil {
		return runErr
	}

	ux.Summary(d.Report)
	return nil
}

// loadSettings merges the optional settings file with flag values
// (flags win) and validates the result.
func loadSettings(cmd *cli.Command) (*config.Settings, error) {
	flags := config.Settings{
		ScanRoot: cmd.String("dir"),
		WorkRoot: cmd.String("work"),
		Marker:   cmd.String("start"),
		PathList: cmd.String("path"),
		Ext:      cmd.String("ext"),
	}

	settings := &config.Settings{}
	path := cmd.String("config")
	fromFile, err := config.Load(path)
	switch {
	case err == nil:
		settings = fromFile
	case errors.Is(err, fs.ErrNotExist) && !cmd.IsSet("config"):
		// No settings file is fine unless one was asked for.
	default:
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	settings.Merge(flags)
	if err := config.Validate(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write an example .linedoc.yaml in the current directory",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-12s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'linedoc docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}
