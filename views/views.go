// Package views provides the default templates for a weddingnanny App. Each
// component renders into a buffer and writes it in one call.
package views

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/weddingnanny"
)

// Defaults returns a complete set of components.
func Defaults() weddingnanny.ViewFuncs {
	return weddingnanny.ViewFuncs{
		CityPage:     CityPage,
		AdminLogin:   AdminLogin,
		AdminConsole: AdminConsole,
		NotFound:     NotFound,
		ServerError:  ServerError,
	}
}

type htmlBuf struct {
	bytes.Buffer
}

// raw writes trusted markup.
func (b *htmlBuf) raw(parts ...string) {
	for _, p := range parts {
		b.WriteString(p)
	}
}

// text writes s escaped for element content or a quoted attribute.
func (b *htmlBuf) text(s string) {
	b.WriteString(templ.EscapeString(s))
}

func component(fn func(b *htmlBuf)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b htmlBuf
		fn(&b)
		_, err := w.Write(b.Bytes())
		return err
	})
}

// jsString encodes s as a JavaScript string literal safe inside <script>.
func jsString(s string) string {
	out, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(out)
}

type pageHead struct {
	Title       string
	Description string
	Keywords    string
	Canonical   string
	OGImage     string
	OGType      string
	SiteName    string
	GoogleTagID string
	HeadScripts string // injected verbatim
	JSONLD      []string
	NoIndex     bool
	CSRFToken   string
}

func writeHead(b *htmlBuf, h pageHead) {
	b.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`,
		`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
	b.raw(`<title>`)
	b.text(h.Title)
	b.raw(`</title>`)
	if h.NoIndex {
		b.raw(`<meta name="robots" content="noindex, nofollow"/>`)
	}
	meta := func(attr, key, val string) {
		if val == "" {
			return
		}
		b.raw(`<meta `, attr, `="`, key, `" content="`)
		b.text(val)
		b.raw(`"/>`)
	}
	meta("name", "description", h.Description)
	meta("name", "keywords", h.Keywords)
	meta("property", "og:title", h.Title)
	meta("property", "og:description", h.Description)
	meta("property", "og:type", h.OGType)
	meta("property", "og:url", h.Canonical)
	meta("property", "og:image", h.OGImage)
	meta("property", "og:site_name", h.SiteName)
	meta("name", "csrf-token", h.CSRFToken)
	if h.Canonical != "" {
		b.raw(`<link rel="canonical" href="`)
		b.text(h.Canonical)
		b.raw(`"/>`)
	}
	b.raw(`<link rel="stylesheet" href="/public/styles.css"/>`)
	for _, ld := range h.JSONLD {
		b.raw(`<script type="application/ld+json">`, ld, `</script>`)
	}
	if h.GoogleTagID != "" {
		b.raw(`<script async src="https://www.googletagmanager.com/gtag/js?id=`)
		b.text(h.GoogleTagID)
		b.raw(`"></script><script>window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js',new Date());gtag('config',`,
			jsString(h.GoogleTagID), `);</script>`)
	}
	b.raw(h.HeadScripts)
	b.raw(`</head>`)
}
