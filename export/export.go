// Package export writes result rows out as csv for spreadsheets and charting
// tools.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/avlowe/lineup/data"
)

// Columns is the full set of exportable columns, in their default order.
var Columns = []string{
	"search_term",
	"artist_name",
	"artist_id",
	"followers_count",
	"url",
	"image_url",
}

// CSV writes rows to w with a header line. columns selects and orders the
// output columns; nil means all of them. Cells for unresolved rows are left
// empty.
func CSV(w io.Writer, rows []data.Row, columns []string) error {
	if columns == nil {
		columns = Columns
	}
	for _, col := range columns {
		if !validColumn(col) {
			return fmt.Errorf("unsupported column '%s'", col)
		}
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, col := range columns {
			record[i] = cell(row, col)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("error writing csv row for '%s': %w", row.SearchTerm, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func validColumn(name string) bool {
	for _, col := range Columns {
		if col == name {
			return true
		}
	}
	return false
}

func cell(row data.Row, col string) string {
	if col == "search_term" {
		return row.SearchTerm
	}
	if row.Artist == nil {
		return ""
	}
	switch col {
	case "artist_name":
		return row.Artist.Name
	case "artist_id":
		return strconv.FormatInt(row.Artist.ID, 10)
	case "followers_count":
		return strconv.FormatInt(row.Artist.Followers, 10)
	case "url":
		return row.Artist.URL
	case "image_url":
		return row.Artist.ImageURL
	default:
		return ""
	}
}
