package wiki

import (
	"bytes"
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/Ritvik-Gupta/scraprs/internal/scrapeerr"
	"github.com/Ritvik-Gupta/scraprs/pkg/logger"
	"github.com/go-resty/resty/v2"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/140.0.0.0 Safari/537.36"

type Client struct {
	http *resty.Client
}

// NewClient returns a client for the wiki at baseURL. No request timeout is
// set beyond the transport defaults.
func NewClient(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "en-US,en;q=0.9")
	return &Client{http: c}
}

// Fetch validates ref, downloads the article and parses it.
func (c *Client) Fetch(ctx context.Context, ref string) (*goquery.Document, error) {
	if err := ValidateRef(ref); err != nil {
		return nil, err
	}

	resp, err := c.http.R().SetContext(ctx).Get(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", scrapeerr.ErrTransport, ref, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: get %s: status %d", scrapeerr.ErrTransport, ref, resp.StatusCode())
	}

	logger.Log.Debug().Str("article", ArticleName(ref)).Int("status", resp.StatusCode()).Int("bytes", len(resp.Body())).Msg("article fetched")

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", scrapeerr.ErrIO, ref, err)
	}
	return doc, nil
}

// FetchLinks returns the article references linked from ref's body text.
func (c *Client) FetchLinks(ctx context.Context, ref string) ([]string, error) {
	doc, err := c.Fetch(ctx, ref)
	if err != nil {
		return nil, err
	}
	return ExtractLinks(doc)
}
