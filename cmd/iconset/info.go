package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/qtex/iconset/settings"
)

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     "Show sheet dimensions and any saved grid",
		ArgsUsage: "SHEET",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
			}

			sheetPath, err := filepath.Abs(c.Args().First())
			if err != nil {
				return cli.NewExitError(err, 1)
			}

			f, err := os.Open(sheetPath)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			defer f.Close()

			config, kind, err := image.DecodeConfig(f)
			if err != nil {
				return cli.NewExitError(err, 1)
			}

			fmt.Printf("%s: %s, %dx%d\n", sheetPath, kind, config.Width, config.Height)

			store, err := settings.OpenSQLite(c.String("db"))
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			defer store.Close()

			p, ok, err := loadParams(store, sheetPath)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			if !ok {
				fmt.Println("no saved grid")
				return nil
			}

			cellW, cellH := p.cellW, p.cellH
			if cellW == 0 && cellH == 0 {
				cellW = config.Width / p.columns
				cellH = config.Height / p.rows
			}

			fmt.Printf("grid: %dx%d, cell size: %dx%d, %d icons\n", p.columns, p.rows, cellW, cellH, p.columns*p.rows)

			return nil
		},
	}
}
