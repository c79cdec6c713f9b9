package handling

import (
	"fmt"
	"net/http"
	"strings"
)

// HotTubListOptions carries the query parameters of the hot tub list endpoint
type HotTubListOptions struct {
	Locale        string
	Collection    string
	SortBy        string // "seating" or "price"
	SortAscending bool
}

// ParseHotTubListOptions parses HTTP query parameters into HotTubListOptions
func ParseHotTubListOptions(r *http.Request) (*HotTubListOptions, error) {
	query := r.URL.Query()

	opts := &HotTubListOptions{
		Locale:        query.Get("locale"),
		Collection:    strings.TrimSpace(query.Get("collection")),
		SortAscending: true,
	}

	if sortBy := strings.ToLower(query.Get("sort_by")); sortBy != "" {
		switch sortBy {
		case "seating", "price":
			opts.SortBy = sortBy
		default:
			return nil, fmt.Errorf("unsupported sort_by value %q", sortBy)
		}
	}

	if direction := strings.ToUpper(query.Get("sort_direction")); direction != "" {
		switch direction {
		case "ASC":
			opts.SortAscending = true
		case "DESC":
			opts.SortAscending = false
		default:
			return nil, fmt.Errorf("unsupported sort_direction value %q", direction)
		}
	}

	return opts, nil
}
