package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/avlowe/lineup/batch"
	"github.com/avlowe/lineup/cache"
	"github.com/avlowe/lineup/config"
	"github.com/avlowe/lineup/genius"
	"github.com/avlowe/lineup/resolve"
	"github.com/avlowe/lineup/subcmd"
)

func lookup(ctx context.Context, cfg config.Config, args []string) error {
	subcmd := subcmd.New("lookup", "resolve a single artist name against the genius api\nrequires GENIUS_ACCESS_TOKEN")
	subcmd.SetArg("name", "string", "artist name to resolve (required)")
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	name := strings.Join(subcmd.Args(), " ")
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("no artist name given")
	}

	if err := cfg.RequireToken(); err != nil {
		return err
	}

	runner := batch.New(genius.New(cfg.AccessToken), cache.New(cache.DefaultTTL))

	start := time.Now()
	outcome := runner.ResolveOne(ctx, name)
	elapsed := time.Since(start)

	switch outcome.Status {
	case resolve.Found:
		artist := outcome.Artist
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "name\t%s\n", artist.Name)
		fmt.Fprintf(tw, "id\t%d\n", artist.ID)
		fmt.Fprintf(tw, "followers\t%d\n", artist.Followers)
		fmt.Fprintf(tw, "url\t%s\n", artist.URL)
		if artist.ImageURL != "" {
			fmt.Fprintf(tw, "image\t%s\n", artist.ImageURL)
		}
		tw.Flush()
		fmt.Printf("fetched in %s\n", elapsed.Truncate(time.Millisecond))
		return nil

	case resolve.NotFound:
		fmt.Printf("no results for '%s'; try a different spelling\n", name)
		return nil

	default:
		return fmt.Errorf("lookup failed: %s", outcome.Reason)
	}
}
