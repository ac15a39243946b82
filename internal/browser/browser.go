package browser

import (
	"context"
	"fmt"
	"sync"

	"github.com/Ritvik-Gupta/scraprs/internal/scrapeerr"
	cdpopts "github.com/Ritvik-Gupta/scraprs/pkg/chromedp"
	"github.com/Ritvik-Gupta/scraprs/pkg/logger"
	"github.com/chromedp/chromedp"
)

type Options struct {
	// RemoteURL is a DevTools endpoint (ws:// or http://) of a running
	// browser. When empty a local headless Chrome is launched.
	RemoteURL string
}

// Session owns one browser tab and the allocator behind it.
type Session struct {
	tabCtx      context.Context
	tabCancel   context.CancelFunc
	allocCancel context.CancelFunc
	remote      string
	closeOnce   sync.Once
}

// Open connects to (or launches) a browser and opens a tab. Callers must
// defer Close as soon as Open returns successfully.
func Open(ctx context.Context, opts Options) (*Session, error) {
	var (
		allocCtx    context.Context
		allocCancel context.CancelFunc
	)
	if opts.RemoteURL != "" {
		allocCtx, allocCancel = chromedp.NewRemoteAllocator(ctx, opts.RemoteURL)
	} else {
		allocCtx, allocCancel = chromedp.NewExecAllocator(ctx, cdpopts.GetExecAllocatorOptions()...)
	}

	tabCtx, tabCancel := chromedp.NewContext(allocCtx)
	if err := chromedp.Run(tabCtx); err != nil {
		tabCancel()
		allocCancel()
		return nil, fmt.Errorf("%w: start browser: %v", scrapeerr.ErrTransport, err)
	}

	logger.Log.Debug().Str("remote", opts.RemoteURL).Msg("browser session opened")

	return &Session{
		tabCtx:      tabCtx,
		tabCancel:   tabCancel,
		allocCancel: allocCancel,
		remote:      opts.RemoteURL,
	}, nil
}

// Navigate loads url in the session tab and returns the document root.
func (s *Session) Navigate(ctx context.Context, url string) (*Element, error) {
	root := &Element{tabCtx: s.tabCtx}
	if err := root.run(ctx, chromedp.Navigate(url)); err != nil {
		return nil, fmt.Errorf("%w: navigate %s: %v", scrapeerr.ErrTransport, url, err)
	}
	logger.Log.Debug().Str("url", url).Msg("page loaded")
	return root, nil
}

// Close ends the session. It is safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.tabCancel()
		s.allocCancel()
		logger.Log.Debug().Str("remote", s.remote).Msg("browser session closed")
	})
}
