package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/qtex/iconset/sheet"
)

func composeCommand() *cli.Command {
	return &cli.Command{
		Name:        "compose",
		Usage:       "Build a sprite sheet from individual icon files",
		Description: "The cell size is taken from the first cell; the output format from the OUT extension.",
		ArgsUsage:   "OUT CELL...",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "columns",
				Aliases: []string{"c"},
				Usage:   "number of grid columns (defaults to a single row of all cells)",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
			}

			out := c.Args().First()

			cells := make([]image.Image, 0, c.NArg()-1)
			for _, file := range c.Args().Slice()[1:] {
				m, err := decodeSheet(file)
				if err != nil {
					return cli.NewExitError(fmt.Errorf("%s: %w", file, err), 1)
				}
				cells = append(cells, m)
			}

			columns := c.Int("columns")
			if columns < 1 {
				columns = len(cells)
			}
			rows := (len(cells) + columns - 1) / columns

			b := cells[0].Bounds()
			m, err := sheet.Compose(cells, columns, rows, b.Dx(), b.Dy())
			if err != nil {
				return cli.NewExitError(err, 1)
			}

			format := strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
			if format == "" {
				format = "png"
			}

			f, err := os.Create(out)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			defer f.Close()

			if err := sheet.Encode(f, m, format); err != nil {
				return cli.NewExitError(err, 1)
			}

			return nil
		},
	}
}
