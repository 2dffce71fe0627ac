package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/avlowe/lineup/batch"
	"github.com/avlowe/lineup/cache"
	"github.com/avlowe/lineup/config"
	"github.com/avlowe/lineup/db"
	"github.com/avlowe/lineup/export"
	"github.com/avlowe/lineup/genius"
	"github.com/avlowe/lineup/ingest"
	"github.com/avlowe/lineup/subcmd"
)

func runBatch(ctx context.Context, cfg config.Config, args []string) error {
	subcmd := subcmd.New("batch", "resolve a list of artist names and save the results\nrequires GENIUS_ACCESS_TOKEN")
	artistsFile := subcmd.String("artists", "artists.txt", "artist list: one name per line, or a saved html page")
	workers := subcmd.Int("workers", cfg.Workers, "concurrent lookups (1-16)")
	csvOut := subcmd.String("csv", "", "also write the batch as csv to this file")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	if err := cfg.RequireToken(); err != nil {
		return err
	}

	names, err := ingest.ReadFile(*artistsFile)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no artist names in '%s'; check for blank lines or comments", *artistsFile)
	}
	log.Printf("read:\t%d names from %s", len(names), *artistsFile)

	d, err := db.Open(cfg.DBFile)
	if err != nil {
		return err
	}
	defer d.Close()

	runner := batch.New(genius.New(cfg.AccessToken), cache.New(cache.DefaultTTL))
	rows := runner.Run(ctx, names, *workers, func(done, total int) {
		log.Printf("batch:\t%d of %d", done, total)
	})

	if err := d.SaveRows(rows); err != nil {
		return err
	}

	matched := 0
	for _, row := range rows {
		if row.Matched() {
			matched++
		}
	}
	log.Printf("done:\t%d rows (%d matched) saved to %s", len(rows), matched, cfg.DBFile)

	if *csvOut != "" {
		f, err := os.Create(*csvOut)
		if err != nil {
			return fmt.Errorf("error creating '%s': %w", *csvOut, err)
		}
		defer f.Close()
		if err := export.CSV(f, rows, nil); err != nil {
			return err
		}
		log.Printf("wrote:\t%s", *csvOut)
	}

	return ctx.Err()
}
