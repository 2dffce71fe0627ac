package main

import (
	"context"
	"fmt"

	"github.com/avlowe/lineup/config"
	"github.com/avlowe/lineup/db"
	"github.com/avlowe/lineup/subcmd"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var humanPrinter = message.NewPrinter(language.English)

func report(ctx context.Context, cfg config.Config, args []string) error {
	subcmd := subcmd.New("report", "summarize the stored dataset")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	d, err := db.Open(cfg.DBFile)
	if err != nil {
		return err
	}
	defer d.Close()

	total, err := d.CountRows()
	if err != nil {
		return err
	}
	matched, err := d.CountMatched()
	if err != nil {
		return err
	}
	missing, err := d.CountMissing()
	if err != nil {
		return err
	}
	failed, err := d.CountFailed()
	if err != nil {
		return err
	}

	humanPrinter.Printf("%d\trows in %s\n", total, cfg.DBFile)
	if total == 0 {
		return nil
	}
	humanPrinter.Printf("%d\tmatched (%.2f%%)\n", matched, 100.0*float64(matched)/float64(total))
	humanPrinter.Printf("%d\tno match (%.2f%%)\n", missing, 100.0*float64(missing)/float64(total))
	humanPrinter.Printf("%d\tfailed (%.2f%%)\n", failed, 100.0*float64(failed)/float64(total))

	return nil
}
