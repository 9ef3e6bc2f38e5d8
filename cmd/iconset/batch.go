package main

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/urfave/cli/v2"

	"github.com/qtex/iconset/settings"
)

const numWorkers = 10

var sheetExtensions = map[string]struct{}{
	".bmp":  {},
	".gif":  {},
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".tiff": {},
	".webp": {},
}

func findSheets(ctx context.Context, base string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			if _, ok := sheetExtensions[strings.ToLower(filepath.Ext(file))]; !ok {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc
}

func sheetWorker(logger *log.Logger, store settings.Store, outBase, format string, in <-chan string) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for sheetPath := range in {
			p, ok, err := loadParams(store, sheetPath)
			if err != nil {
				errc <- err
				return
			}
			if !ok {
				logger.Printf("no saved grid for \"%s\", skipping", sheetPath)
				continue
			}

			base := strings.TrimSuffix(filepath.Base(sheetPath), filepath.Ext(sheetPath))
			if err := sliceSheet(logger, sheetPath, filepath.Join(outBase, base), format, p); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	for err := range mergeErrors(errs...) {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

func batchCommand() *cli.Command {
	return &cli.Command{
		Name:        "batch",
		Usage:       "Slice every sheet found under a directory",
		Description: "Only sheets with grid dimensions saved in the settings database are sliced; the rest are skipped.",
		ArgsUsage:   "DIR [OUT]",
		Flags: []cli.Flag{
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

			dir, err := filepath.Abs(c.Args().First())
			if err != nil {
				return cli.NewExitError(err, 1)
			}

			outBase := dir
			if c.NArg() > 1 {
				if outBase, err = filepath.Abs(c.Args().Get(1)); err != nil {
					return cli.NewExitError(err, 1)
				}
			}

			store, err := settings.OpenSQLite(c.String("db"))
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			defer store.Close()

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sheets, errc := findSheets(ctx, dir)

			errcList := []<-chan error{errc}
			for i := 0; i < numWorkers; i++ {
				errcList = append(errcList, sheetWorker(logger, store, outBase, c.String("format"), sheets))
			}

			if err := waitForPipeline(errcList...); err != nil {
				return cli.NewExitError(err, 1)
			}

			return nil
		},
	}
}
