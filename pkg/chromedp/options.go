package chromedp

import (
	"os"

	"github.com/chromedp/chromedp"
)

const UserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/140.0.0.0 Safari/537.36"

// chromePaths are probed in order when Chrome is not on PATH under a name
// chromedp already knows.
var chromePaths = []string{
	"/headless-shell/headless-shell", // chromedp/headless-shell
	"/usr/bin/chromium-browser",
	"/usr/bin/chromium",
	"/usr/bin/google-chrome",
	"/usr/bin/google-chrome-stable",
}

// GetExecAllocatorOptions returns options for launching a local headless
// Chrome, locally or inside a container.
func GetExecAllocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("window-size", "1920,1080"),
		chromedp.UserAgent(UserAgent),
	)

	if p := findExecPath(chromePaths); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	return opts
}

func findExecPath(candidates []string) string {
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
