package export_test

import (
	"strings"
	"testing"

	"github.com/avlowe/lineup/data"
	"github.com/avlowe/lineup/export"
	"github.com/stretchr/testify/assert"
)

var rows = []data.Row{
	{SearchTerm: "U2", Artist: &data.Artist{
		ID: 1, Name: "U2", Followers: 900, URL: "https://genius.com/artists/U2", ImageURL: "https://images.genius.com/u2.jpg",
	}},
	{SearchTerm: "nobody"},
	{SearchTerm: "flaky", Err: "timeout"},
}

func TestCSVAllColumns(t *testing.T) {
	var buf strings.Builder
	assert.NoError(t, export.CSV(&buf, rows, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"search_term,artist_name,artist_id,followers_count,url,image_url",
		"U2,U2,1,900,https://genius.com/artists/U2,https://images.genius.com/u2.jpg",
		"nobody,,,,,",
		"flaky,,,,,",
	}, lines)
}

func TestCSVColumnSubset(t *testing.T) {
	var buf strings.Builder
	assert.NoError(t, export.CSV(&buf, rows[:1], []string{"artist_name", "followers_count"}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"artist_name,followers_count", "U2,900"}, lines)
}

func TestCSVRejectsUnknownColumn(t *testing.T) {
	var buf strings.Builder
	assert.Error(t, export.CSV(&buf, rows, []string{"search_term", "favorite_color"}))
}

func TestCSVEmptyRows(t *testing.T) {
	var buf strings.Builder
	assert.NoError(t, export.CSV(&buf, nil, nil))
	assert.Equal(t, "search_term,artist_name,artist_id,followers_count,url,image_url\n", buf.String())
}
