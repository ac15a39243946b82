package wiki

import (
	"fmt"
	"regexp"

	"github.com/Ritvik-Gupta/scraprs/internal/scrapeerr"
)

var pathRegex = regexp.MustCompile(`^/wiki/(?P<name>[^"]+)$`)

// IsWikiPath reports whether p is a bare relative article reference.
func IsWikiPath(p string) bool {
	return pathRegex.MatchString(p)
}

// ArticleName returns the part after /wiki/, or "" when p is not a wiki path.
func ArticleName(p string) string {
	m := pathRegex.FindStringSubmatch(p)
	if m == nil {
		return ""
	}
	return m[pathRegex.SubexpIndex("name")]
}

// ValidateRef rejects anything that is not a relative article reference.
func ValidateRef(ref string) error {
	if !IsWikiPath(ref) {
		return fmt.Errorf("%w: %q is not a /wiki/<name> reference", scrapeerr.ErrInvalidInput, ref)
	}
	return nil
}

// FilterWikiPaths keeps the article references in hrefs, in order and
// with repeats.
func FilterWikiPaths(hrefs []string) []string {
	paths := make([]string, 0, len(hrefs))
	for _, h := range hrefs {
		if IsWikiPath(h) {
			paths = append(paths, h)
		}
	}
	return paths
}
