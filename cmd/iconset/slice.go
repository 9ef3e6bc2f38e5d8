package main

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/qtex/iconset"
	"github.com/qtex/iconset/settings"
	"github.com/qtex/iconset/sheet"
)

// Settings keys for the per-sheet grid parameters; the group is the
// absolute path of the sheet.
const (
	keyColumns    = "columns"
	keyRows       = "rows"
	keyCellWidth  = "cellWidth"
	keyCellHeight = "cellHeight"
)

type gridParams struct {
	columns, rows int
	cellW, cellH  int
}

func loadParams(store settings.Store, sheetPath string) (gridParams, bool, error) {
	c := settings.NewContainer[string](sheetPath, settings.StringKeys{})
	if err := c.Read(store); err != nil {
		return gridParams{}, false, err
	}

	p := gridParams{
		columns: c.Int(keyColumns, 0),
		rows:    c.Int(keyRows, 0),
		cellW:   c.Int(keyCellWidth, 0),
		cellH:   c.Int(keyCellHeight, 0),
	}
	if p.columns < 1 || p.rows < 1 {
		return gridParams{}, false, nil
	}

	return p, true, nil
}

func saveParams(store settings.Store, sheetPath string, p gridParams) error {
	c := settings.NewContainer[string](sheetPath, settings.StringKeys{})
	c.Set(keyColumns, p.columns)
	c.Set(keyRows, p.rows)
	c.Set(keyCellWidth, p.cellW)
	c.Set(keyCellHeight, p.cellH)
	return c.Write(store)
}

func decodeSheet(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	return m, err
}

func sliceSheet(logger *log.Logger, sheetPath, outDir, format string, p gridParams) error {
	m, err := decodeSheet(sheetPath)
	if err != nil {
		return err
	}

	var options []iconset.Option
	if p.cellW > 0 || p.cellH > 0 {
		options = append(options, iconset.WithCellSize(p.cellW, p.cellH))
	}

	grid, err := iconset.New(m, p.columns, p.rows, options...)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(sheetPath), filepath.Ext(sheetPath))
	for index := 0; index < grid.Len(); index++ {
		col, row := grid.Coords(index)
		name := fmt.Sprintf("%s_%d_%d.%s", base, col, row, format)

		f, err := os.Create(filepath.Join(outDir, name))
		if err != nil {
			return err
		}
		if err := sheet.Encode(f, grid.Icon(index), format); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}

		logger.Printf("wrote %s", name)
	}

	return nil
}

func sliceCommand() *cli.Command {
	return &cli.Command{
		Name:        "slice",
		Usage:       "Split a sprite sheet into individual icon files",
		Description: "Grid dimensions are remembered per sheet in the settings database and reused when the flags are omitted.",
		ArgsUsage:   "SHEET [DIR]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "columns",
				Aliases: []string{"c"},
				Usage:   "number of grid columns",
			},
			&cli.IntFlag{
				Name:    "rows",
				Aliases: []string{"r"},
				Usage:   "number of grid rows",
			},
			&cli.IntFlag{
				Name:  "cell-width",
				Usage: "explicit cell width in pixels",
			},
			&cli.IntFlag{
				Name:  "cell-height",
				Usage: "explicit cell height in pixels",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "png",
				Usage:   "output format (png, gif, bmp)",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
			}

			logger := newLogger(c)

			sheetPath, err := filepath.Abs(c.Args().First())
			if err != nil {
				return cli.NewExitError(err, 1)
			}

			outDir := filepath.Dir(sheetPath)
			if c.NArg() > 1 {
				if outDir, err = filepath.Abs(c.Args().Get(1)); err != nil {
					return cli.NewExitError(err, 1)
				}
			}

			store, err := settings.OpenSQLite(c.String("db"))
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			defer store.Close()

			p := gridParams{
				columns: c.Int("columns"),
				rows:    c.Int("rows"),
				cellW:   c.Int("cell-width"),
				cellH:   c.Int("cell-height"),
			}
			if p.columns == 0 && p.rows == 0 {
				saved, ok, err := loadParams(store, sheetPath)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				if !ok {
					return cli.NewExitError(errors.New("no grid size given and none saved for this sheet"), 1)
				}
				p = saved
			}

			if err := sliceSheet(logger, sheetPath, outDir, c.String("format"), p); err != nil {
				return cli.NewExitError(err, 1)
			}

			if err := saveParams(store, sheetPath, p); err != nil {
				return cli.NewExitError(err, 1)
			}

			return nil
		},
	}
}
