package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/eringen/weddingnanny"
	"github.com/eringen/weddingnanny/content"
	"github.com/eringen/weddingnanny/dashboard"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.String()
}

func testView(layout ...string) weddingnanny.CityView {
	return weddingnanny.CityView{
		Page: content.CityPage{
			ID:     "jaipur",
			Name:   "Jaipur",
			Layout: layout,
			Hero:   content.Hero{Title: "Kids <3 weddings", Subtitle: "Relax", ImageAlt: "Kids"},
			Trust:  content.Trust{Title: "Trusted", Description: "**Vetted** caregivers"},
			FAQs:   []content.FAQ{{Question: "Are nannies vetted?", Answer: "Yes."}},
			Testimonials: []content.Testimonial{
				{Text: "Wonderful", Author: "Priya", Location: "Jaipur", Rating: 4},
			},
		},
		Global: content.GlobalConfig{
			SiteName:      "The Wedding Nanny",
			HeadScripts:   `<script>window.head = 1;</script>`,
			FooterScripts: `<script>window.foot = 1;</script>`,
			CustomJS:      `console.log("hi")`,
		},
		Cities: []weddingnanny.CityLink{
			{ID: "home", Name: "Home", URL: "/"},
			{ID: "jaipur", Name: "Jaipur", URL: "/jaipur"},
		},
		Canonical: "https://weddingnanny.in/jaipur",
	}
}

func TestCityPageLayoutOrder(t *testing.T) {
	html := render(t, CityPage(testView("faq", "hero", "trust")))

	faq := strings.Index(html, `id="faq"`)
	hero := strings.Index(html, `id="hero"`)
	trust := strings.Index(html, `id="trust"`)
	if faq < 0 || hero < 0 || trust < 0 {
		t.Fatalf("missing sections: faq=%d hero=%d trust=%d", faq, hero, trust)
	}
	if !(faq < hero && hero < trust) {
		t.Errorf("sections out of layout order: faq=%d hero=%d trust=%d", faq, hero, trust)
	}
	if strings.Contains(html, `id="testimonials"`) {
		t.Error("sections absent from the layout should not render")
	}
}

func TestCityPageSkipsEmptyOptionalSections(t *testing.T) {
	html := render(t, CityPage(testView("hero", "local-insights", "partners", "bogus")))
	if strings.Contains(html, `id="local-insights"`) {
		t.Error("local insights should not render without content")
	}
	if strings.Contains(html, `id="partners"`) {
		t.Error("partners should not render unless enabled")
	}

	v := testView("hero", "local-insights", "partners")
	v.Page.Partners = true
	v.Page.LocalInsights = &content.LocalInsights{Title: "Jaipur Weddings", Content: []string{"Palace venues."}}
	html = render(t, CityPage(v))
	for _, want := range []string{`id="local-insights"`, "Palace venues.", `id="partners"`} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

func TestCityPageEscapesContent(t *testing.T) {
	html := render(t, CityPage(testView("hero")))
	if !strings.Contains(html, "Kids &lt;3 weddings") {
		t.Error("hero title should be escaped")
	}
	if strings.Contains(html, "Kids <3 weddings") {
		t.Error("hero title rendered unescaped")
	}
}

func TestCityPageInjectsScriptsVerbatim(t *testing.T) {
	html := render(t, CityPage(testView("hero")))
	head := html[:strings.Index(html, "</head>")]
	if !strings.Contains(head, `<script>window.head = 1;</script>`) {
		t.Error("head scripts should be injected verbatim into <head>")
	}
	body := html[strings.Index(html, "<body"):]
	if !strings.Contains(body, `<script>window.foot = 1;</script>`) {
		t.Error("footer scripts should be injected verbatim into <body>")
	}
	if !strings.Contains(body, `<script>console.log("hi")</script>`) {
		t.Error("custom JS should be wrapped in a script element")
	}
}

func TestCityPageStructuredData(t *testing.T) {
	html := render(t, CityPage(testView("hero", "faq")))
	for _, want := range []string{`"@type":"ChildCare"`, `"@type":"FAQPage"`, `"areaServed"`, `<link rel="canonical" href="https://weddingnanny.in/jaipur"/>`} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in output", want)
		}
	}

	html = render(t, CityPage(testView("hero")))
	if strings.Contains(html, `"FAQPage"`) {
		t.Error("FAQPage data should be omitted when the FAQ section is hidden")
	}
}

func TestCityPageNavMarksCurrentCity(t *testing.T) {
	html := render(t, CityPage(testView("hero")))
	if !strings.Contains(html, `<a href="/jaipur" aria-current="page">Jaipur</a>`) {
		t.Error("current city link should be marked")
	}
	if strings.Contains(html, `>Home</a>`) {
		t.Error("home should not appear in the city navigation")
	}
}

func TestJSONLDDoesNotCloseScript(t *testing.T) {
	ld := FAQPageJsonLD([]content.FAQ{{Question: "</script><script>alert(1)", Answer: "a"}})
	if strings.Contains(ld, "</script>") {
		t.Errorf("JSON-LD contains a closing script tag: %s", ld)
	}
	if FAQPageJsonLD(nil) != "" {
		t.Error("empty FAQ list should produce no JSON-LD")
	}
}

func TestFormatInline(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"*italic*", "<em>italic</em>"},
		{"text **bold** and *it*", "text <strong>bold</strong> and <em>it</em>"},
		{"<b>x</b>", "&lt;b&gt;x&lt;/b&gt;"},
		{"[Call us](tel:+911234)", `<a href="tel:+911234" class="underline">Call us</a>`},
		{"[Site](https://example.com)^", `<a href="https://example.com" class="underline" target="_blank" rel="noopener noreferrer">Site</a>`},
		{"[About](/about)", `<a href="/about" class="underline">About</a>`},
	}
	for _, tt := range tests {
		got := formatInline(tt.input)
		if got != tt.expected {
			t.Errorf("formatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineRejectsUnsafeLinks(t *testing.T) {
	got := formatInline("[x](javascript:alert)")
	if strings.Contains(got, "href") || strings.Contains(got, "javascript") {
		t.Errorf("unsafe link rendered: %q", got)
	}
}

func TestRichTextParagraphs(t *testing.T) {
	got := render(t, RichText("one\ntwo\n\n\nthree"))
	want := "<p>one<br/>two</p><p>three</p>"
	if got != want {
		t.Errorf("RichText = %q, want %q", got, want)
	}
}

func TestAdminLogin(t *testing.T) {
	html := render(t, AdminLogin(false, "tok\"en"))
	if strings.Contains(html, "Incorrect password") {
		t.Error("error message shown without a failed attempt")
	}
	if !strings.Contains(html, `name="_csrf" value="tok&#34;en"`) {
		t.Error("csrf token should be escaped into the form")
	}
	if !strings.Contains(render(t, AdminLogin(true, "")), "Incorrect password") {
		t.Error("error message missing after a failed attempt")
	}
}

func TestAdminConsole(t *testing.T) {
	st := content.State{
		Cities: content.DefaultCities(),
		Global: content.DefaultGlobal(),
		Backups: []content.BackupEntry{
			{ID: "bk-1", Timestamp: 1714557600000, Label: "Before <Launch>"},
		},
		Logs: []content.LogEntry{
			{ID: "1", Timestamp: 1714557600000, Description: "Updated city: Delhi-NCR", Author: content.LogAuthor},
		},
	}
	stats := dashboard.Summarize(st.Global.Bookings)
	html := render(t, AdminConsole(weddingnanny.AdminView{
		State:     st,
		CityIDs:   []string{"home"},
		Stats:     stats,
		Calendar:  dashboard.CalendarMonth(st.Global.Bookings, 2025, 5),
		CSRFToken: "csrf-123",
		Images: []weddingnanny.Image{
			{Filename: "a.jpg", URL: "/public/uploads/a.jpg", Width: 10, Height: 5},
		},
	}))

	for _, want := range []string{
		`<meta name="csrf-token" content="csrf-123"/>`,
		`Before &lt;Launch&gt;`,
		`data-api="/admin/api/backups/bk-1/restore"`,
		`data-api="/admin/api/reset"`,
		`Updated city: Delhi-NCR`,
		`/public/uploads/a.jpg`,
		`data-api="/admin/api/cities/home/hero"`,
		`X-CSRF-Token`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in admin console", want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := map[int64]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		88000:   "88,000",
		1234567: "1,234,567",
		-4500:   "-4,500",
	}
	for in, want := range tests {
		if got := formatAmount(in); got != want {
			t.Errorf("formatAmount(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestErrorPages(t *testing.T) {
	if html := render(t, NotFound()); !strings.Contains(html, "Page not found") || !strings.Contains(html, "noindex") {
		t.Error("NotFound page incomplete")
	}
	if html := render(t, ServerError()); !strings.Contains(html, "Something went wrong") {
		t.Error("ServerError page incomplete")
	}
}
