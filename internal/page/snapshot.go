package page

import (
	"context"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/Ritvik-Gupta/scraprs/internal/scrapeerr"
)

// Snapshot is an Element over a static goquery selection.
type Snapshot struct {
	sel *goquery.Selection
}

func FromDocument(doc *goquery.Document) *Snapshot {
	return &Snapshot{sel: doc.Selection}
}

// Parse reads an HTML document and returns its root element.
func Parse(r io.Reader) (*Snapshot, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: parse html: %v", scrapeerr.ErrIO, err)
	}
	return FromDocument(doc), nil
}

func (s *Snapshot) Find(ctx context.Context, selector string) (Element, error) {
	el, ok, err := s.Query(ctx, selector)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", scrapeerr.ErrElementNotFound, selector)
	}
	return el, nil
}

func (s *Snapshot) Query(ctx context.Context, selector string) (Element, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	found := s.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, false, nil
	}
	return &Snapshot{sel: found}, true, nil
}

func (s *Snapshot) Attr(_ context.Context, name string) (string, bool, error) {
	val, ok := s.sel.Attr(name)
	return val, ok, nil
}

func (s *Snapshot) Text(_ context.Context) (string, error) {
	return s.sel.Text(), nil
}
