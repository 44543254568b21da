package views

import "github.com/a-h/templ"

// NotFound renders the 404 page.
func NotFound() templ.Component {
	return errorPage("Page not found", "We couldn't find that page. Try the home page instead.")
}

// ServerError renders the 500 page.
func ServerError() templ.Component {
	return errorPage("Something went wrong", "Please try again in a moment.")
}

func errorPage(title, msg string) templ.Component {
	return component(func(b *htmlBuf) {
		writeHead(b, pageHead{Title: title, NoIndex: true})
		b.raw(`<body class="error-page"><main><h1>`)
		b.text(title)
		b.raw(`</h1><p>`)
		b.text(msg)
		b.raw(`</p><a href="/">Back to home</a></main></body></html>`)
	})
}
