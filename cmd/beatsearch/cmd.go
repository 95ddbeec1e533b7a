package main

import (
	"beatsite/internal/notify"

	"github.com/urfave/cli/v3"
)

func catalogFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "catalog",
		Aliases: []string{"c"},
		Usage:   "Path to a TOML catalog file",
		Sources: cli.EnvVars("CATALOG_FILE"),
	}
}

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "json",
		Usage: "Output JSON",
	}
}

func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Aliases:   []string{"s"},
		Usage:     "Print grouped results for a query",
		ArgsUsage: "<query>",
		Flags:     []cli.Flag{jsonFlag()},
		Action:    r.Search,
	}
}

func activateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "activate",
		Usage: "Print the action for selecting a catalog entry",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "kind",
				Aliases:  []string{"k"},
				Usage:    "Entry kind: beat, artist or genre",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "title",
				Aliases:  []string{"t"},
				Usage:    "Exact entry title",
				Required: true,
			},
			jsonFlag(),
		},
		Action: r.Activate,
	}
}

func catalogCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "List every catalog entry",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Usage:   "Only list entries of this kind",
			},
			jsonFlag(),
		},
		Action: r.Catalog,
	}
}

func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Interactive search box with live results",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "toast-ttl",
				Usage: "How long notifications stay visible",
				Value: notify.DefaultTTL,
			},
		},
		Action: r.TUI,
	}
}
