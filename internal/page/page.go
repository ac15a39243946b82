// Package page defines a small query capability over a rendered document so
// extraction logic does not depend on how the document was obtained.
package page

import (
	"context"
)

// Element is a handle to one node of a document.
type Element interface {
	// Find returns the first descendant matching selector, or an error
	// wrapping scrapeerr.ErrElementNotFound.
	Find(ctx context.Context, selector string) (Element, error)

	// Query is Find for elements that might not exist. A missing element
	// yields (nil, false, nil).
	Query(ctx context.Context, selector string) (Element, bool, error)

	// Attr reports the attribute value and whether it is present.
	Attr(ctx context.Context, name string) (string, bool, error)

	// Text returns the element's text content.
	Text(ctx context.Context) (string, error)
}
