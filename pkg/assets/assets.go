// Package assets embeds the page's stylesheet and enhancement scripts.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// Paths of the embedded files, relative to Static().
const (
	StylesPath   = "styles.css"
	RevealPath   = "js/reveal.js"
	WaitlistPath = "js/waitlist.js"
)

// Static returns the embedded files rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The directory is embedded at build time; Sub only fails on a bad path.
		panic(err)
	}
	return sub
}

// Bundle holds the stylesheet and scripts in memory so a page can carry
// them inline and work without the server.
type Bundle struct {
	CSS        string
	RevealJS   string
	WaitlistJS string
}

// LoadBundle reads the embedded assets into a Bundle.
func LoadBundle() (*Bundle, error) {
	static := Static()
	read := func(name string) (string, error) {
		b, err := fs.ReadFile(static, name)
		if err != nil {
			return "", fmt.Errorf("error reading %s: %w", name, err)
		}
		return string(b), nil
	}

	css, err := read(StylesPath)
	if err != nil {
		return nil, err
	}
	reveal, err := read(RevealPath)
	if err != nil {
		return nil, err
	}
	waitlist, err := read(WaitlistPath)
	if err != nil {
		return nil, err
	}
	return &Bundle{CSS: css, RevealJS: reveal, WaitlistJS: waitlist}, nil
}
