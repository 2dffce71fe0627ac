// lineup resolves free-text artist names against the Genius API and collects
// the results into a sqlite dataset that can be filtered and exported as csv.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/avlowe/lineup/config"
	"github.com/avlowe/lineup/sigctx"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var usage = strings.TrimSpace(`
usage: lineup $cmd
valid $cmd are 'lookup', 'batch', 'export', 'report'
for help: lineup $cmd -help
`)

func run() error {
	ctx := sigctx.New()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if len(os.Args) < 2 {
		return errors.New(usage)
	}
	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "lookup":
		return lookup(ctx, cfg, args)

	case "batch":
		return runBatch(ctx, cfg, args)

	case "export":
		return exportRows(ctx, cfg, args)

	case "report":
		return report(ctx, cfg, args)

	default:
		return fmt.Errorf("unknown cmd: '%s'\n%s", cmd, usage)
	}
}
