package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/avlowe/lineup/config"
	"github.com/avlowe/lineup/db"
	"github.com/avlowe/lineup/export"
	"github.com/avlowe/lineup/setflag"
	"github.com/avlowe/lineup/subcmd"
)

func exportRows(ctx context.Context, cfg config.Config, args []string) error {
	subcmd := subcmd.New("export", "write the stored dataset as csv, narrowed by optional filters")
	minFollowers := subcmd.Int64("min-followers", 0, "keep rows with at least this many followers")
	nameContains := subcmd.String("name", "", "keep rows whose artist name contains this")
	onlyMatched := subcmd.Bool("matched", false, "keep only rows with a resolved artist")
	top := subcmd.Int("top", 0, "keep the N rows with the most followers")
	out := subcmd.String("o", "", "output file (default stdout)")
	columns := setflag.New(export.Columns...)
	subcmd.Var(columns, "columns", "comma-separated subset of columns to include")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	d, err := db.Open(cfg.DBFile)
	if err != nil {
		return err
	}
	defer d.Close()

	rows, err := d.FilteredRows(db.Filter{
		MinFollowers: *minFollowers,
		NameContains: *nameContains,
		OnlyMatched:  *onlyMatched,
		Top:          *top,
	})
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("error creating '%s': %w", *out, err)
		}
		defer f.Close()
		w = f
	}

	cols := columns.List()
	if len(cols) == 0 {
		cols = nil
	}
	return export.CSV(w, rows, cols)
}
