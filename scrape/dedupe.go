package scrape

import (
	"slices"
	"strings"

	"github.com/fwojciec/mdscrape/bloom"
)

// dedupeFalsePositiveRate sizes the Bloom filter used by Dedupe.
const dedupeFalsePositiveRate = 0.001

// Dedupe returns urls with repeats removed, keeping the first occurrence of
// each in input order. URLs are trimmed, and URLs that differ only by
// fragment name the same page. The Bloom filter screens each URL; only its
// positives are confirmed against the URLs kept so far.
func Dedupe(urls []string) []string {
	filter := bloom.NewFilter(uint(len(urls)), dedupeFalsePositiveRate)

	out := make([]string, 0, len(urls))
	keys := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		key := dedupeKey(u)
		if filter.TestAndAdd(key) && slices.Contains(keys, key) {
			continue
		}
		keys = append(keys, key)
		out = append(out, u)
	}
	return out
}

func dedupeKey(u string) string {
	if i := strings.IndexByte(u, '#'); i != -1 {
		return u[:i]
	}
	return u
}
