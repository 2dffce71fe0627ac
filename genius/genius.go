// Package genius is a minimal client for the two Genius API endpoints the
// resolver needs: song search and artist detail.
package genius

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/avlowe/lineup/data"
	"github.com/avlowe/lineup/request"
)

const baseURL = "https://api.genius.com"

// ErrGenius wraps every transport or HTTP failure from the Genius API, so
// callers can tell an API problem apart from a bug on our side.
var ErrGenius = errors.New("genius api error")

// New creates a new Genius client with the given bearer token. The token is
// supplied by the caller; the client never reads the environment itself.
func New(accessToken string) *Client {
	return &Client{
		accessToken: accessToken,
		baseURL:     baseURL,
		http:        &http.Client{Timeout: 15 * time.Second},
	}
}

type Client struct {
	accessToken string
	baseURL     string
	http        *http.Client
}

// Search runs a text search and returns the primary artist of each hit, in
// the order the API returned them.
func (gen *Client) Search(ctx context.Context, query string) ([]data.Hit, error) {
	q := url.Values{}
	q.Add("q", query)

	resp, err := gen.get(ctx, gen.baseURL+"/search", q)
	if err != nil {
		return nil, err
	}

	defer resp.Close()
	var results searchResults
	dec := json.NewDecoder(resp)
	if err := dec.Decode(&results); err != nil {
		return nil, fmt.Errorf("search decode error: %w", err)
	}

	hits := make([]data.Hit, len(results.Response.Hits))
	for i, hit := range results.Response.Hits {
		hits[i] = data.Hit{
			ArtistID:   hit.Result.PrimaryArtist.ID,
			ArtistName: hit.Result.PrimaryArtist.Name,
		}
	}
	return hits, nil
}

type searchResults struct {
	Response struct {
		Hits []struct {
			Result struct {
				PrimaryArtist struct {
					ID   int64
					Name string
				} `json:"primary_artist"`
			}
		}
	}
}

// FetchArtist fetches the full record for one artist id.
func (gen *Client) FetchArtist(ctx context.Context, id int64) (*data.Artist, error) {
	resp, err := gen.get(ctx, fmt.Sprintf("%s/artists/%d", gen.baseURL, id), nil)
	if err != nil {
		return nil, err
	}

	defer resp.Close()
	var results artistResult
	dec := json.NewDecoder(resp)
	if err := dec.Decode(&results); err != nil {
		return nil, fmt.Errorf("artist decode error: %w", err)
	}

	fetched := results.Response.Artist
	return &data.Artist{
		ID:        fetched.ID,
		Name:      fetched.Name,
		Followers: fetched.FollowersCount,
		URL:       fetched.URL,
		ImageURL:  fetched.ImageURL,
	}, nil
}

type artistResult struct {
	Response struct {
		Artist struct {
			ID             int64
			Name           string
			FollowersCount int64 `json:"followers_count"`
			URL            string
			ImageURL       string `json:"image_url"`
		}
	}
}

func (gen *Client) get(ctx context.Context, baseURL string, query url.Values) (io.ReadCloser, error) {
	url, _ := url.Parse(baseURL)
	if query != nil {
		url.RawQuery = query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, "GET", url.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", gen.accessToken))

	resp, err := gen.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrGenius, err)
	}
	if err := request.Error(resp); err != nil {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrGenius, err)
	}

	return resp.Body, nil
}
