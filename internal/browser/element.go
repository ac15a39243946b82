package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/Ritvik-Gupta/scraprs/internal/page"
	"github.com/Ritvik-Gupta/scraprs/internal/scrapeerr"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/chromedp"
)

// Element is a live DOM node in a session tab. A nil node stands for the
// document itself.
type Element struct {
	tabCtx context.Context
	node   *cdp.Node
}

var _ page.Element = (*Element)(nil)

// run executes actions against the tab, aborting when either the tab or
// ctx is done.
func (e *Element) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(e.tabCtx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := chromedp.Run(runCtx, actions...); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}

func (e *Element) Find(ctx context.Context, selector string) (page.Element, error) {
	el, ok, err := e.Query(ctx, selector)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", scrapeerr.ErrElementNotFound, selector)
	}
	return el, nil
}

func (e *Element) Query(ctx context.Context, selector string) (page.Element, bool, error) {
	opts := []chromedp.QueryOption{chromedp.ByQuery, chromedp.AtLeast(0)}
	if e.node != nil {
		opts = append(opts, chromedp.FromNode(e.node))
	}

	var nodes []*cdp.Node
	if err := e.run(ctx, chromedp.Nodes(selector, &nodes, opts...)); err != nil {
		return nil, false, fmt.Errorf("%w: query %s: %v", scrapeerr.ErrTransport, selector, err)
	}
	if len(nodes) == 0 {
		return nil, false, nil
	}
	return &Element{tabCtx: e.tabCtx, node: nodes[0]}, true, nil
}

func (e *Element) Attr(ctx context.Context, name string) (string, bool, error) {
	if e.node == nil {
		return "", false, nil
	}

	var attrs []string
	err := e.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		attrs, err = dom.GetAttributes(e.node.NodeID).Do(ctx)
		return err
	}))
	if err != nil {
		return "", false, fmt.Errorf("%w: read attribute %s: %v", scrapeerr.ErrTransport, name, err)
	}

	val, ok := lookupAttr(attrs, name)
	return val, ok, nil
}

// lookupAttr finds name in a flat name/value list as returned by
// DOM.getAttributes. A trailing name without a value is ignored.
func lookupAttr(attrs []string, name string) (string, bool) {
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i] == name {
			return attrs[i+1], true
		}
	}
	return "", false
}

func (e *Element) Text(ctx context.Context) (string, error) {
	var html string
	var action chromedp.Action = chromedp.OuterHTML("html", &html, chromedp.ByQuery)
	if e.node != nil {
		action = chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			html, err = dom.GetOuterHTML().WithNodeID(e.node.NodeID).Do(ctx)
			return err
		})
	}
	if err := e.run(ctx, action); err != nil {
		return "", fmt.Errorf("%w: read text: %v", scrapeerr.ErrTransport, err)
	}

	return htmlText(html)
}

// htmlText returns the text content of an outer-HTML fragment.
func htmlText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("%w: parse node html: %v", scrapeerr.ErrIO, err)
	}
	return doc.Text(), nil
}
