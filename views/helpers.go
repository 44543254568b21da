package views

import (
	"encoding/json"

	"github.com/eringen/weddingnanny"
	"github.com/eringen/weddingnanny/content"
)

// ChildCareJsonLD produces a Schema.org ChildCare block for a city page.
func ChildCareJsonLD(v weddingnanny.CityView) string {
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "ChildCare",
		"name":        v.Global.SiteName,
		"url":         v.Canonical,
		"description": v.Global.MetaDescription,
	}
	if v.Page.ID != content.HomeCityID {
		data["areaServed"] = map[string]string{
			"@type": "City",
			"name":  v.Page.Name,
		}
	}
	if v.Global.OGImageURL != "" {
		data["image"] = v.Global.OGImageURL
	}
	if n := len(v.Page.Testimonials); n > 0 {
		sum := 0
		for _, t := range v.Page.Testimonials {
			sum += t.Rating
		}
		data["aggregateRating"] = map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": float64(sum) / float64(n),
			"reviewCount": n,
		}
	}
	return marshalLD(data)
}

// FAQPageJsonLD produces a Schema.org FAQPage block, or "" if faqs is empty.
func FAQPageJsonLD(faqs []content.FAQ) string {
	if len(faqs) == 0 {
		return ""
	}
	items := make([]map[string]any, 0, len(faqs))
	for _, f := range faqs {
		items = append(items, map[string]any{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": map[string]string{
				"@type": "Answer",
				"text":  f.Answer,
			},
		})
	}
	return marshalLD(map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": items,
	})
}

// marshalLD encodes v for a <script type="application/ld+json"> element.
// encoding/json escapes <, > and &, so the output cannot close the script.
func marshalLD(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
