package data

// A Hit is one ambiguous search result from the Genius /search endpoint: the
// primary artist attached to a song that matched the query. Hits only live
// long enough to be disambiguated.
type Hit struct {
	ArtistID   int64
	ArtistName string
}

// An Artist is the detail record from the Genius /artists/:id endpoint.
// Immutable once fetched.
type Artist struct {
	ID        int64
	Name      string
	Followers int64
	URL       string
	ImageURL  string
}

// A Row pairs one search term with whatever came back for it. Exactly one Row
// exists per submitted term, in submission order. Artist is nil when the term
// resolved to nothing; Err is the failure reason when resolution blew up
// rather than merely missing.
type Row struct {
	SearchTerm string
	Artist     *Artist
	Err        string
}

// Matched reports whether the row carries a resolved artist.
func (r Row) Matched() bool { return r.Artist != nil }
