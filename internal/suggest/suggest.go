// Package suggest offers fuzzy "did you mean" suggestions for the demo
// CLI's error output, using approximate string matching to find the
// closest known names to a mistyped token.
package suggest

import "github.com/sahilm/fuzzy"

// For returns up to n candidates from pool that best fuzzy-match token,
// ranked closest first. It is meant to annotate a [FlagNotFoundError] or
// [UnexpectedArgError] with a "did you mean" hint, not to drive
// completion itself.
func For(token string, pool []string, n int) []string {
	if token == "" || len(pool) == 0 {
		return nil
	}

	matches := fuzzy.Find(token, pool)
	if len(matches) == 0 {
		return nil
	}
	if len(matches) > n {
		matches = matches[:n]
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = pool[m.Index]
	}
	return out
}
