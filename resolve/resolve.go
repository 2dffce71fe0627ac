// Package resolve turns one free-text artist name into one terminal Outcome:
// a resolved artist record, an explicit not-found, or an explicit error.
package resolve

import (
	"context"
	"fmt"

	"github.com/avlowe/lineup/data"
	"github.com/avlowe/lineup/match"
)

// API is the remote search service the resolver talks to. genius.Client
// satisfies it; tests substitute deterministic stubs.
type API interface {
	Search(ctx context.Context, query string) ([]data.Hit, error)
	FetchArtist(ctx context.Context, id int64) (*data.Artist, error)
}

// Status distinguishes "we found an artist" from "the API answered and there
// was no plausible artist" from "we couldn't get an answer at all". The
// original tooling collapsed the last two; keeping them apart lets a caller
// treat a transient failure differently from a legitimately absent name.
type Status int

const (
	Found Status = iota
	NotFound
	Error
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NotFound:
		return "not found"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// An Outcome is the terminal result of resolving one query. Artist is set
// only for Found; Reason only for Error.
type Outcome struct {
	Status Status
	Artist *data.Artist
	Reason string
}

func found(artist *data.Artist) Outcome { return Outcome{Status: Found, Artist: artist} }

func notFound() Outcome { return Outcome{Status: NotFound} }

func errorf(format string, args ...any) Outcome {
	return Outcome{Status: Error, Reason: fmt.Sprintf(format, args...)}
}

// Row converts the outcome into a result row for the given search term.
func (o Outcome) Row(term string) data.Row {
	return data.Row{SearchTerm: term, Artist: o.Artist, Err: o.Reason}
}

func New(api API) *Resolver {
	return &Resolver{api: api}
}

type Resolver struct {
	api API
}

// Resolve runs the full pipeline for one query: search, disambiguate, fetch
// detail. It makes at most two network calls and never retries. Failures come
// back inside the Outcome, never as an error: the batch runner executes many
// of these concurrently and one bad item must not take down the rest.
func (r *Resolver) Resolve(ctx context.Context, query string) Outcome {
	hits, err := r.api.Search(ctx, query)
	if err != nil {
		return errorf("search '%s': %s", query, err)
	}

	best, ok := match.Best(query, hits)
	if !ok {
		return notFound()
	}

	artist, err := r.api.FetchArtist(ctx, best.ArtistID)
	if err != nil {
		return errorf("fetch artist %d for '%s': %s", best.ArtistID, query, err)
	}

	return found(artist)
}
