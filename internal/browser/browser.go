// Package browser opens a URL in the host's default browser, backing the
// `lumen creator` command. The original implementation does the same
// through Rust's webbrowser crate (original_source/src/lang/mod.rs); this
// wraps the Go ecosystem's equivalent, github.com/pkg/browser, instead of
// hand-dispatching to open/rundll32/xdg-open.
package browser

import pkgbrowser "github.com/pkg/browser"

// Open launches url in the OS default browser.
func Open(url string) error {
	return pkgbrowser.OpenURL(url)
}
