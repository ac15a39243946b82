package wiki

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/Ritvik-Gupta/scraprs/internal/scrapeerr"
)

const (
	contentSelector = "div#bodyContent"

	// Only links inside running text; tables, infoboxes and navboxes are skipped.
	paragraphLinkSelector = "p a[href]"
)

// ExtractLinks returns the article references linked from body paragraphs.
func ExtractLinks(doc *goquery.Document) ([]string, error) {
	content := doc.Find(contentSelector).First()
	if content.Length() == 0 {
		return nil, fmt.Errorf("%w: %s", scrapeerr.ErrMissingContentRegion, contentSelector)
	}

	var (
		hrefs []string
		err   error
	)
	content.Find(paragraphLinkSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		if !ok {
			err = fmt.Errorf("%w: anchor without href", scrapeerr.ErrMissingAttribute)
			return false
		}
		hrefs = append(hrefs, href)
		return true
	})
	if err != nil {
		return nil, err
	}

	return FilterWikiPaths(hrefs), nil
}
