package views

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/weddingnanny"
	"github.com/eringen/weddingnanny/content"
)

// CityPage renders a public landing page. Sections appear in layout order;
// unknown section ids are skipped.
func CityPage(v weddingnanny.CityView) templ.Component {
	return component(func(b *htmlBuf) {
		g := v.Global
		title := g.SiteName
		if v.Page.ID != content.HomeCityID && v.Page.Name != "" {
			title = v.Page.Name + " | " + g.SiteName
		}
		ld := []string{ChildCareJsonLD(v)}
		if v.Page.Visible(content.SectionFAQ) {
			if faq := FAQPageJsonLD(v.Page.FAQs); faq != "" {
				ld = append(ld, faq)
			}
		}
		writeHead(b, pageHead{
			Title:       title,
			Description: g.MetaDescription,
			Keywords:    g.Keywords,
			Canonical:   v.Canonical,
			OGImage:     g.OGImageURL,
			OGType:      "website",
			SiteName:    g.SiteName,
			GoogleTagID: g.GoogleTagID,
			HeadScripts: g.HeadScripts,
			JSONLD:      ld,
		})
		b.raw(`<body class="city-`)
		b.text(v.Page.ID)
		b.raw(`">`)
		writeNav(b, v)
		b.raw(`<main>`)
		for _, id := range v.Page.Layout {
			if fn, ok := sectionRenderers[id]; ok {
				fn(b, v.Page)
			}
		}
		b.raw(`</main>`)
		writeFooter(b, v)
		b.raw(g.FooterScripts)
		if strings.TrimSpace(g.CustomJS) != "" {
			b.raw(`<script>`, g.CustomJS, `</script>`)
		}
		b.raw(`</body></html>`)
	})
}

func writeNav(b *htmlBuf, v weddingnanny.CityView) {
	b.raw(`<header class="site-header"><a class="brand" href="/">`)
	b.text(v.Global.SiteName)
	b.raw(`</a><nav aria-label="Cities"><ul>`)
	for _, c := range v.Cities {
		if c.ID == content.HomeCityID {
			continue
		}
		b.raw(`<li><a href="`)
		b.text(c.URL)
		b.raw(`"`)
		if c.ID == v.Page.ID {
			b.raw(` aria-current="page"`)
		}
		b.raw(`>`)
		b.text(c.Name)
		b.raw(`</a></li>`)
	}
	b.raw(`</ul></nav></header>`)
}

func writeFooter(b *htmlBuf, v weddingnanny.CityView) {
	b.raw(`<footer class="site-footer"><p>&copy; `)
	b.text(v.Global.SiteName)
	b.raw(`</p></footer>`)
}

var sectionRenderers = map[string]func(b *htmlBuf, p content.CityPage){
	content.SectionHero:          writeHero,
	content.SectionTrust:         writeTrust,
	content.SectionTestimonials:  writeTestimonials,
	content.SectionFAQ:           writeFAQ,
	content.SectionLocalInsights: writeLocalInsights,
	content.SectionPartners:      writePartners,
	content.SectionReality:       staticSection(content.SectionReality, "The Wedding Reality", "Unstructured, stressful, and full of interruptions, until The Wedding Nanny arrives. Qualified caregivers, structured activities and a calm space for every child."),
	content.SectionServices:      staticSection(content.SectionServices, "What We Offer", "On-site nannies, activity corners, nap spaces and meal-time supervision for every function of your wedding."),
	content.SectionHowItWorks:    writeHowItWorks,
	content.SectionPricing:       staticSection(content.SectionPricing, "Pricing", "Choose your city, the number of kids and the hours of care to get an instant estimate."),
	content.SectionPackages:      staticSection(content.SectionPackages, "Our Stress-Free Packages", "Choose the level of care that fits your celebration. All packages require a 25% deposit to secure your date."),
	content.SectionComparison:    staticSection(content.SectionComparison, "Compare Plans Side-by-Side", "Find the perfect balance of care and entertainment for your guest list."),
	content.SectionContact:       writeContact,
	content.SectionAbout:         staticSection(content.SectionAbout, "About Us", "We are a team of vetted, first-aid trained caregivers who make Indian weddings joyful for kids and relaxing for parents."),
}

func sectionOpen(b *htmlBuf, id, heading string) {
	b.raw(`<section id="`, id, `" class="section section-`, id, `">`)
	if heading != "" {
		b.raw(`<h2>`)
		b.text(heading)
		b.raw(`</h2>`)
	}
}

func staticSection(id, heading, body string) func(*htmlBuf, content.CityPage) {
	return func(b *htmlBuf, _ content.CityPage) {
		sectionOpen(b, id, heading)
		b.raw(`<p>`)
		b.text(body)
		b.raw(`</p></section>`)
	}
}

func writeHero(b *htmlBuf, p content.CityPage) {
	h := p.Hero
	b.raw(`<section id="hero" class="section section-hero">`)
	if h.PillText != "" {
		b.raw(`<span class="pill">`)
		b.text(h.PillText)
		b.raw(`</span>`)
	}
	b.raw(`<h1>`)
	b.text(h.Title)
	b.raw(`</h1><p class="subtitle">`)
	b.text(h.Subtitle)
	b.raw(`</p><img class="hero-art" src="/public/hero.jpg" width="1200" height="800" fetchpriority="high" alt="`)
	b.text(h.ImageAlt)
	b.raw(`"/><a class="cta" href="#contact">Book a Nanny</a></section>`)
}

func writeTrust(b *htmlBuf, p content.CityPage) {
	sectionOpen(b, content.SectionTrust, p.Trust.Title)
	writeRichText(b, p.Trust.Description)
	b.raw(`</section>`)
}

func writeTestimonials(b *htmlBuf, p content.CityPage) {
	if len(p.Testimonials) == 0 {
		return
	}
	sectionOpen(b, content.SectionTestimonials, "What Parents Say")
	b.raw(`<div class="carousel">`)
	for _, t := range p.Testimonials {
		b.raw(`<figure class="testimonial"><div class="stars" aria-label="`)
		b.text(fmt.Sprintf("%d out of 5 stars", t.Rating))
		b.raw(`">`, strings.Repeat("&#9733;", clampRating(t.Rating)), `</div><blockquote>`)
		b.text(t.Text)
		b.raw(`</blockquote><figcaption>`)
		b.text(t.Author)
		if t.Location != "" {
			b.raw(`, <span class="location">`)
			b.text(t.Location)
			b.raw(`</span>`)
		}
		b.raw(`</figcaption></figure>`)
	}
	b.raw(`</div></section>`)
}

func clampRating(r int) int {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

func writeFAQ(b *htmlBuf, p content.CityPage) {
	if len(p.FAQs) == 0 {
		return
	}
	sectionOpen(b, content.SectionFAQ, "Frequently Asked Questions")
	for _, f := range p.FAQs {
		b.raw(`<details><summary>`)
		b.text(f.Question)
		b.raw(`</summary>`)
		writeRichText(b, f.Answer)
		b.raw(`</details>`)
	}
	b.raw(`</section>`)
}

// writeLocalInsights renders nothing when the page has no insights, even if
// the section is in the layout.
func writeLocalInsights(b *htmlBuf, p content.CityPage) {
	li := p.LocalInsights
	if li == nil {
		return
	}
	sectionOpen(b, content.SectionLocalInsights, li.Title)
	for _, para := range li.Content {
		writeRichText(b, para)
	}
	b.raw(`</section>`)
}

// writePartners renders only when the page opts in.
func writePartners(b *htmlBuf, p content.CityPage) {
	if !p.Partners {
		return
	}
	sectionOpen(b, content.SectionPartners, "Planner & Venue Partnerships")
	b.raw(`<p>Offer turnkey childcare to your clients. Revenue share &amp; fast onboarding.</p>`,
		`<ul><li>Dedicated onboarding &amp; 10&ndash;15% commission.</li>`,
		`<li>Co-branded offers and pilot events for testimonials.</li>`,
		`<li>Partner portal, training &amp; SOPs provided.</li></ul></section>`)
}

func writeHowItWorks(b *htmlBuf, _ content.CityPage) {
	sectionOpen(b, content.SectionHowItWorks, "How It Works")
	b.raw(`<ol class="steps">`,
		`<li><strong>Share Your Event</strong> Tell us your date, venue, and kids' count.</li>`,
		`<li><strong>Choose a Package</strong> We recommend the right care level for your requirements.</li>`,
		`<li><strong>Meet Your Nanny</strong> We introduce your lead nanny before the event.</li>`,
		`<li><strong>Enjoy Your Day</strong> We take care of the kids while you enjoy the celebrations.</li>`,
		`</ol></section>`)
}

func writeContact(b *htmlBuf, p content.CityPage) {
	sectionOpen(b, content.SectionContact, "Let's Plan the Kids' Party!")
	b.raw(`<p>Tell us about your event in `)
	b.text(p.Name)
	b.raw(` and we will send a detailed quote.</p><a class="cta" href="mailto:hello@weddingnanny.in">Request a Quote</a></section>`)
}
