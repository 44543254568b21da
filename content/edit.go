package content

import "fmt"

// Direction is the way MoveSection shifts a layout entry.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// MoveSection swaps the layout entry at index with its neighbour in dir. It
// returns the edited copy and whether anything moved; moving past either end
// is a no-op.
func MoveSection(p CityPage, index int, dir Direction) (CityPage, bool) {
	target := index - 1
	if dir == Down {
		target = index + 1
	}
	if index < 0 || index >= len(p.Layout) || target < 0 || target >= len(p.Layout) {
		return p, false
	}
	out := p.Clone()
	out.Layout[index], out.Layout[target] = out.Layout[target], out.Layout[index]
	return out, true
}

// MoveDescription is the change log text for a reorder.
func MoveDescription(p CityPage) string {
	return "Reordered sections for " + p.Name
}

// ToggleSection removes every occurrence of section from the layout if it is
// present, or appends it at the end if it is not.
func ToggleSection(p CityPage, section string) CityPage {
	out := p.Clone()
	layout := make([]string, 0, len(p.Layout)+1)
	found := false
	for _, id := range p.Layout {
		if id == section {
			found = true
			continue
		}
		layout = append(layout, id)
	}
	if !found {
		layout = append(layout, section)
	}
	out.Layout = layout
	return out
}

// ToggleDescription is the change log text for a visibility toggle.
func ToggleDescription(p CityPage, section string) string {
	return fmt.Sprintf("Toggled visibility of %s on %s", section, p.Name)
}

// Visible reports whether section is part of the page layout.
func (p CityPage) Visible(section string) bool {
	for _, id := range p.Layout {
		if id == section {
			return true
		}
	}
	return false
}

// SetHeroField sets one hero text field by its JSON name.
func SetHeroField(p CityPage, field, value string) (CityPage, error) {
	out := p.Clone()
	switch field {
	case "title":
		out.Hero.Title = value
	case "subtitle":
		out.Hero.Subtitle = value
	case "imageAlt":
		out.Hero.ImageAlt = value
	case "pillText":
		out.Hero.PillText = value
	default:
		return p, invalidf("unknown hero field %q", field)
	}
	return out, nil
}

// AddTestimonial prepends a placeholder testimonial located in the page's city.
func AddTestimonial(p CityPage) CityPage {
	out := p.Clone()
	t := Testimonial{Text: "New Testimonial", Author: "Anonymous", Rating: 5, Location: p.Name}
	out.Testimonials = append([]Testimonial{t}, out.Testimonials...)
	return out
}

// RemoveTestimonial drops the testimonial at idx.
func RemoveTestimonial(p CityPage, idx int) (CityPage, error) {
	if idx < 0 || idx >= len(p.Testimonials) {
		return p, notFoundf("testimonial %d", idx)
	}
	out := p.Clone()
	out.Testimonials = append(out.Testimonials[:idx:idx], out.Testimonials[idx+1:]...)
	return out, nil
}

// UpdateTestimonial replaces the testimonial at idx.
func UpdateTestimonial(p CityPage, idx int, t Testimonial) (CityPage, error) {
	if idx < 0 || idx >= len(p.Testimonials) {
		return p, notFoundf("testimonial %d", idx)
	}
	out := p.Clone()
	out.Testimonials[idx] = t
	return out, nil
}

// SetGlobalField sets one string field of the global settings by JSON name.
func SetGlobalField(g GlobalConfig, field, value string) (GlobalConfig, error) {
	out := g.Clone()
	switch field {
	case "siteName":
		out.SiteName = value
	case "metaDescription":
		out.MetaDescription = value
	case "keywords":
		out.Keywords = value
	case "googleTagId":
		out.GoogleTagID = value
	case "ogImageUrl":
		out.OGImageURL = value
	case "headScripts":
		out.HeadScripts = value
	case "footerScripts":
		out.FooterScripts = value
	case "customJs":
		out.CustomJS = value
	case "robotsTxt":
		out.RobotsTxt = value
	case "sitemapXml":
		out.SitemapXML = value
	default:
		return g, invalidf("unknown global field %q", field)
	}
	return out, nil
}
