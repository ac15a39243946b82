//go:build e2e
// +build e2e

package potd_test

import (
	"context"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcwait "github.com/testcontainers/testcontainers-go/wait"

	"github.com/Ritvik-Gupta/scraprs/internal/browser"
	"github.com/Ritvik-Gupta/scraprs/internal/potd"
	"github.com/Ritvik-Gupta/scraprs/internal/wait"
)

// hydratingPage starts in the loading state and flips to the final markup
// after a delay, like the real problem-set page.
const hydratingPage = `<!DOCTYPE html>
<html><body>
<div class="table-wrap pointer-events-none">
  <div role="table"><div role="rowgroup" id="rows"></div></div>
</div>
<script>
setTimeout(function () { document.body.className = 'hydrated'; }, 300);
setTimeout(function () {
  document.querySelector('.table-wrap').classList.remove('pointer-events-none');
}, 700);
setTimeout(function () {
  document.getElementById('rows').innerHTML =
    '<div role="row">' +
      '<div role="cell"><a href="/problems/two-sum/"><svg></svg></a></div>' +
      '<div role="cell"><a href="/problems/two-sum/">1. Two Sum</a></div>' +
      '<div role="cell"><a aria-label="solution" href="/problems/two-sum/solution">s</a></div>' +
    '</div>';
}, 1100);
</script>
</body></html>`

func setupBrowser(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "chromedp/headless-shell:latest",
		ExposedPorts: []string{"9222/tcp"},
		WaitingFor:   tcwait.ForHTTP("/json/version").WithPort("9222/tcp").WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "9222")
	require.NoError(t, err)

	return fmt.Sprintf("ws://%s:%s", host, port.Port()), func() {
		_ = container.Terminate(context.Background())
	}
}

func TestScrape_LiveBrowser(t *testing.T) {
	ctx := context.Background()

	remote, cleanup := setupBrowser(t, ctx)
	defer cleanup()

	session, err := browser.Open(ctx, browser.Options{RemoteURL: remote})
	require.NoError(t, err)
	defer session.Close()

	root, err := session.Navigate(ctx, "data:text/html,"+url.PathEscape(hydratingPage))
	require.NoError(t, err)

	opts := wait.Options{Timeout: 10 * time.Second, Interval: 100 * time.Millisecond}
	rec, err := potd.NewExtractor("https://leetcode.com").Scrape(ctx, root, opts)
	require.NoError(t, err)

	assert.Equal(t, uint32(1), rec.Number)
	assert.Equal(t, "Two Sum", rec.Name)
	assert.Equal(t, "https://leetcode.com/problems/two-sum/", rec.URL)
	require.NotNil(t, rec.SolutionURL)
	assert.Equal(t, "https://leetcode.com/problems/two-sum/solution", *rec.SolutionURL)
}
