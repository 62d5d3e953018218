// submodule cmd contains command definitions
package main

import (
	"context"

	"github.com/cristiangauma/bsaver-dl/internal/shared"
	"github.com/urfave/cli/v3"
)

// statusCommand reports song presence without downloading
func statusCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Show song download status without fetching anything",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "bplist"},
		},
		Flags: append(downloadFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: table, csv, markdown, text",
				Value:   "table",
			},
		),
		Action: r.Status,
	}
}

// coverCommand extracts only the cover image
func coverCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cover",
		Usage: "Extract the embedded cover image from a playlist",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "bplist"},
		},
		Flags:  downloadFlags(),
		Action: r.Cover,
	}
}

// configCommand handles configuration management
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write a default config.toml to the current directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "Destination path for the config file",
						Value:   "config.toml",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					path := cmd.String("path")
					if err := shared.CreateConfigFile(path); err != nil {
						return err
					}
					r.writePlain("✓ Created %s\n", path)
					return nil
				},
			},
		},
	}
}

// tuiCommand returns the interactive download command.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive"},
		Usage:   "Download with an interactive progress view",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "bplist"},
		},
		Flags:  downloadFlags(),
		Action: r.TUI,
	}
}
