package potd

import (
	"context"
	"fmt"
	"strings"

	"github.com/Ritvik-Gupta/scraprs/internal/page"
	"github.com/Ritvik-Gupta/scraprs/internal/scrapeerr"
	"github.com/Ritvik-Gupta/scraprs/internal/wait"
	"github.com/Ritvik-Gupta/scraprs/pkg/logger"
)

const (
	loadingClass = "pointer-events-none"

	loadingTableSelector = "div:has(div[role='table'])." + loadingClass
	tableSelector        = "div:has(div[role='table'])"
	rowGroupSelector     = "div[role='rowgroup']"
	rowSelector          = "div[role='row']"

	// Only the featured row carries an icon inside a cell link.
	featuredMarkerSelector = "div[role='cell'] > a > svg"
)

// FindFeaturedRow waits for the problem-set page to hydrate and returns the
// row of the problem of the day.
func FindFeaturedRow(ctx context.Context, root page.Element, opts wait.Options) (page.Element, error) {
	log := logger.Log

	body, err := wait.ForElement(ctx, opts, root, "body")
	if err != nil {
		return nil, err
	}
	err = wait.Until(ctx, opts, "body to hydrate", func(ctx context.Context) (bool, error) {
		class, _, err := body.Attr(ctx, "class")
		return class != "", err
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Msg("page hydrated")

	table, err := activeTable(ctx, root, opts)
	if err != nil {
		return nil, err
	}
	log.Debug().Msg("problem table active")

	rowGroup, err := table.Find(ctx, rowGroupSelector)
	if err != nil {
		return nil, fmt.Errorf("row group: %w", err)
	}

	err = wait.Until(ctx, opts, "featured row", func(ctx context.Context) (bool, error) {
		row, ok, err := rowGroup.Query(ctx, rowSelector)
		if err != nil || !ok {
			return false, err
		}
		return hasFeaturedMarker(ctx, row)
	})
	if err != nil {
		return nil, err
	}

	row, err := rowGroup.Find(ctx, rowSelector)
	if err != nil {
		return nil, fmt.Errorf("first row: %w", err)
	}
	featured, err := hasFeaturedMarker(ctx, row)
	if err != nil {
		return nil, err
	}
	if !featured {
		return nil, fmt.Errorf("%w: first row lost the featured marker", scrapeerr.ErrStructureMismatch)
	}

	return row, nil
}

// activeTable returns the table container once it no longer carries the
// loading class.
func activeTable(ctx context.Context, root page.Element, opts wait.Options) (page.Element, error) {
	table, loading, err := root.Query(ctx, loadingTableSelector)
	if err != nil {
		return nil, err
	}

	if loading {
		err = wait.Until(ctx, opts, "problem table to load", func(ctx context.Context) (bool, error) {
			isLoading, err := hasClass(ctx, table, loadingClass)
			return !isLoading, err
		})
		if err != nil {
			return nil, err
		}
	} else {
		// already hydrated before the first query
		table, err = wait.ForElement(ctx, opts, root, tableSelector)
		if err != nil {
			return nil, err
		}
	}

	isLoading, err := hasClass(ctx, table, loadingClass)
	if err != nil {
		return nil, err
	}
	if isLoading {
		return nil, fmt.Errorf("%w: problem table still loading", scrapeerr.ErrStructureMismatch)
	}
	return table, nil
}

func hasFeaturedMarker(ctx context.Context, row page.Element) (bool, error) {
	_, ok, err := row.Query(ctx, featuredMarkerSelector)
	return ok, err
}

func hasClass(ctx context.Context, el page.Element, class string) (bool, error) {
	classes, _, err := el.Attr(ctx, "class")
	if err != nil {
		return false, err
	}
	for _, c := range strings.Fields(classes) {
		if c == class {
			return true, nil
		}
	}
	return false, nil
}
