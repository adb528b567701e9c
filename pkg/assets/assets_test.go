package assets

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticServesPaths(t *testing.T) {
	for _, name := range []string{StylesPath, RevealPath, WaitlistPath} {
		_, err := fs.Stat(Static(), name)
		assert.NoError(t, err, name)
	}
}

func TestLoadBundle(t *testing.T) {
	b, err := LoadBundle()
	require.NoError(t, err)

	assert.Contains(t, b.CSS, "[data-reveal].is-revealed")
	assert.Contains(t, b.WaitlistJS, "/api/waitlist/submit")
	assert.NotContains(t, strings.ToLower(b.RevealJS+b.WaitlistJS), "</script")
}

// reveal.js is the browser half of the entrance animation: it reads the
// attributes the views write and stops watching an element once revealed.
func TestRevealScriptContract(t *testing.T) {
	b, err := LoadBundle()
	require.NoError(t, err)

	for _, want := range []string{
		"[data-reveal]",
		`"data-reveal-mount"`,
		`"data-reveal-threshold"`,
		"entry.intersectionRatio >= threshold",
		"observer.unobserve(entry.target)",
		`classList.add("is-revealed")`,
	} {
		assert.Contains(t, b.RevealJS, want)
	}
	assert.NotContains(t, b.RevealJS, "classList.remove")
}

func TestWaitlistScriptSubmitsOnlyAfterDraftSaved(t *testing.T) {
	b, err := LoadBundle()
	require.NoError(t, err)

	put := strings.Index(b.WaitlistJS, `send("PUT", "/api/waitlist/draft", { email: value })`+"\n        .then")
	check := strings.Index(b.WaitlistJS, "if (!res.ok)")
	submit := strings.Index(b.WaitlistJS, `send("POST", "/api/waitlist/submit")`)

	require.NotEqual(t, -1, put)
	require.NotEqual(t, -1, check)
	require.NotEqual(t, -1, submit)
	assert.Less(t, put, check)
	assert.Less(t, check, submit)
}
