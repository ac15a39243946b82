package potd

import (
	"context"
	"fmt"

	"github.com/Ritvik-Gupta/scraprs/internal/page"
	"github.com/Ritvik-Gupta/scraprs/internal/scrapeerr"
	"github.com/Ritvik-Gupta/scraprs/internal/wait"
)

const (
	problemAnchorSelector  = "div[role='cell']:nth-child(2) a"
	solutionCellSelector   = "div[role='cell']:nth-child(3)"
	solutionAnchorSelector = "a[aria-label='solution']"
)

type Extractor struct {
	baseURL string
}

func NewExtractor(baseURL string) *Extractor {
	return &Extractor{baseURL: baseURL}
}

// ExtractRow builds a Record from the featured table row.
func (e *Extractor) ExtractRow(ctx context.Context, row page.Element) (*Record, error) {
	anchor, err := row.Find(ctx, problemAnchorSelector)
	if err != nil {
		return nil, fmt.Errorf("problem anchor: %w", err)
	}

	title, err := anchor.Text(ctx)
	if err != nil {
		return nil, fmt.Errorf("problem title: %w", err)
	}
	number, name, err := ParseTitle(title)
	if err != nil {
		return nil, err
	}

	url, err := e.absoluteHref(ctx, anchor)
	if err != nil {
		return nil, fmt.Errorf("problem link: %w", err)
	}

	solutionCell, err := row.Find(ctx, solutionCellSelector)
	if err != nil {
		return nil, fmt.Errorf("solution cell: %w", err)
	}

	// no solution published is a normal outcome
	var solutionURL *string
	solutionAnchor, ok, err := solutionCell.Query(ctx, solutionAnchorSelector)
	if err != nil {
		return nil, fmt.Errorf("solution anchor: %w", err)
	}
	if ok {
		u, err := e.absoluteHref(ctx, solutionAnchor)
		if err != nil {
			return nil, fmt.Errorf("solution link: %w", err)
		}
		solutionURL = &u
	}

	return &Record{
		Number:      number,
		Name:        name,
		URL:         url,
		SolutionURL: solutionURL,
	}, nil
}

func (e *Extractor) absoluteHref(ctx context.Context, el page.Element) (string, error) {
	href, ok, err := el.Attr(ctx, "href")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: href", scrapeerr.ErrMissingAttribute)
	}
	return e.baseURL + href, nil
}

// ProblemSetPath is the page listing every problem, featured row first.
const ProblemSetPath = "/problemset/all/"

// Scrape locates the featured row below root and extracts it.
func (e *Extractor) Scrape(ctx context.Context, root page.Element, opts wait.Options) (*Record, error) {
	row, err := FindFeaturedRow(ctx, root, opts)
	if err != nil {
		return nil, err
	}
	return e.ExtractRow(ctx, row)
}
