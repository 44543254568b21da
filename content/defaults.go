package content

// Known section identifiers, in the order the admin console offers them.
const (
	SectionHero          = "hero"
	SectionTrust         = "trust"
	SectionReality       = "reality"
	SectionServices      = "services"
	SectionHowItWorks    = "how-it-works"
	SectionPricing       = "pricing"
	SectionPackages      = "packages"
	SectionComparison    = "comparison"
	SectionTestimonials  = "testimonials"
	SectionFAQ           = "faq"
	SectionContact       = "contact"
	SectionAbout         = "about"
	SectionPartners      = "partners"
	SectionLocalInsights = "local-insights"
)

// Sections lists every section identifier a layout may contain.
var Sections = []string{
	SectionHero, SectionTrust, SectionReality, SectionServices, SectionHowItWorks,
	SectionPricing, SectionPackages, SectionComparison, SectionTestimonials,
	SectionFAQ, SectionContact, SectionAbout, SectionPartners, SectionLocalInsights,
}

// HomeCityID is the slug of the default, country-wide market.
const HomeCityID = "home"

// DefaultGlobal returns a fresh copy of the factory GlobalConfig.
func DefaultGlobal() GlobalConfig {
	return GlobalConfig{
		SiteName:        "The Wedding Nanny",
		RobotsTxt:       "User-agent: *\nDisallow: /admin",
		SitemapXML:      "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<urlset xmlns=\"http://www.sitemaps.org/schemas/sitemap/0.9\">\n  <url><loc>https://weddingnanny.in/</loc></url>\n</urlset>",
		HeadScripts:     "<!-- Google Analytics Placeholder -->",
		MetaDescription: "Premium on-demand childcare and activity corners for Indian weddings. Professional vetting and care.",
		Keywords:        "wedding childcare, indian wedding nannies, event babysitting",
		GoogleTagID:     "G-XXXXXXXXXX",
		OGImageURL:      "https://weddingnanny.in/og-image.jpg",
		Bookings: []Booking{
			{ID: "1", ClientName: "Amit & Ritu", City: "Delhi-NCR", Date: "2025-05-15", Revenue: 15000, Status: StatusConfirmed},
			{ID: "2", ClientName: "Suresh Kumar", City: "Hyderabad", Date: "2025-06-10", Revenue: 8000, Status: StatusConfirmed},
			{ID: "3", ClientName: "Priya Verma", City: "Ballia", Date: "2025-05-20", Revenue: 12000, Status: StatusConfirmed},
			{ID: "4", ClientName: "Vikram Singh", City: "Mumbai", Date: "2025-07-04", Revenue: 35000, Status: StatusConfirmed},
			{ID: "5", ClientName: "Neha Gupta", City: "Delhi-NCR", Date: "2025-08-12", Revenue: 18000, Status: StatusConfirmed},
		},
	}
}

func commonFAQs() []FAQ {
	return []FAQ{
		{
			Question: "What is the nanny-to-child ratio?",
			Answer:   "We maintain a strict ratio of 1:4 for under 3 years and 1:6 for 3+. Infant care uses more staff.",
		},
		{
			Question: "What is included in the 'Custom Activity Zone'?",
			Answer:   "Professional setup/takedown, curated games, sensory play, craft supplies and themed decorations matching the event decor.",
		},
		{
			Question: "When should I book?",
			Answer:   "We recommend booking 3–6 months in advance for peak dates to ensure availability and planning time.",
		},
	}
}

const defaultSubtitle = "On-demand childcare and supervised kids’ areas for Indian weddings. Vetted caregivers, clear safety procedures, and engaging activities to keep children happy while parents enjoy the celebration."

// DefaultCities returns a fresh copy of the factory city pages.
func DefaultCities() map[string]CityPage {
	homeFAQs := []FAQ{{
		Question: "Are you event organizers?",
		Answer:   "No. We provide professional childcare as an on-demand add-on service for weddings. We work alongside your planner or venue team to set up supervised kids’ areas, but we do not organize or manage the event.",
	}}
	homeFAQs = append(homeFAQs, commonFAQs()...)
	homeFAQs = append(homeFAQs, FAQ{
		Question: "Is Wedding Nanny available in multiple cities?",
		Answer:   "Yes — Delhi & NCR, Hyderabad, Ballia and expanding.",
	})

	ballia := []FAQ{{
		Question: "Do you travel to villages near Ballia for home weddings?",
		Answer:   "Yes — we serve Ballia and nearby districts; travel charges depend on distance and logistics.",
	}}
	ballia = append(ballia, commonFAQs()...)

	return map[string]CityPage{
		HomeCityID: {
			ID:     HomeCityID,
			Name:   "India",
			Layout: []string{"hero", "trust", "reality", "services", "how-it-works", "pricing", "packages", "comparison", "testimonials", "faq", "contact", "about", "partners"},
			Hero: Hero{
				Title:    "Enjoy Your Wedding. We’ll Take Care of the Little Ones.",
				Subtitle: defaultSubtitle,
				ImageAlt: "Joyful Kids at Wedding (Vetted Nannies on Duty)",
				PillText: "PREMIER WEDDING CHILDCARE ACROSS INDIA 🇮🇳",
			},
			Trust: Trust{
				Title:       "Why Parents Trust Us",
				Description: "Child safety is at the heart of everything we do. Our families trust us because we follow strict vetting, training, and supervision standards designed specifically for event environments.",
			},
			Testimonials: []Testimonial{
				{Text: "We actually got to enjoy our Sangeet! The kids were mesmerized by the activity corner.", Author: "Priya & Rohan S.", Location: "Delhi", Rating: 5},
				{Text: "As a planner, I need reliability. The Wedding Nanny team was on time and discreet.", Author: "Kavita M.", Location: "Event Designer", Rating: 5},
				{Text: "My infant was cared for during the ceremony — the nap space was a genius addition.", Author: "Sneha P.", Location: "Client Parent", Rating: 5},
			},
			FAQs:     homeFAQs,
			Partners: true,
		},
		"ballia": {
			ID:     "ballia",
			Name:   "Ballia",
			Layout: []string{"hero", "local-insights", "reality", "trust", "services", "pricing", "packages", "comparison", "testimonials", "how-it-works", "faq", "contact", "about", "partners"},
			Hero: Hero{
				Title:    "Enjoy Your Wedding in Ballia. We’ll Take Care of the Little Ones.",
				Subtitle: defaultSubtitle,
				ImageAlt: "Kids playing in supervised kids corner Ballia",
				PillText: "PREMIER EVENT CHILDCARE 🇮🇳",
			},
			Trust: Trust{
				Title:       "Why Parents in Ballia Trust Us",
				Description: "Child safety is at the heart of everything we do. We operate as an on-demand, optional add-on service for weddings, and our families trust us because we follow strict vetting, training, and event-ready supervision standards.",
			},
			Testimonials: []Testimonial{
				{Text: "Late-night wedding functions ke dauraan bachchon ke liye shaant aur safe space milna parents ke liye bahut rahat bhara tha.", Author: "Parent", Location: "Ballia, UP", Rating: 5},
				{Text: "Guests apne bachchon ke saath aaye the, aur caregivers ne khana, khel aur rest sab smoothly manage kiya.", Author: "Family member", Location: "Ballia, UP", Rating: 5},
			},
			FAQs: ballia,
			LocalInsights: &LocalInsights{
				Title: "Serving Ballia & nearby districts",
				Content: []string{
					"Ballia hosts many family-centered, multi-day weddings. We bring structured childcare with locally-aware teams that manage travel and setup in semi-urban and rural venues.",
					"The Multi-Day package is particularly useful here — families appreciate a consistent lead nanny across ceremonies for predictable routines and smoother mealtimes.",
				},
			},
			Partners: true,
		},
		"delhi-ncr": {
			ID:     "delhi-ncr",
			Name:   "Delhi & NCR",
			Layout: []string{"hero", "services", "trust", "pricing", "packages", "comparison", "reality", "how-it-works", "testimonials", "faq", "contact", "about", "partners"},
			Hero: Hero{
				Title:    "Enjoy Your Wedding in Delhi & NCR. We’ll Take Care of the Little Ones.",
				Subtitle: "On-demand childcare and supervised kids’ areas for weddings across Delhi, Noida, Gurugram, Faridabad, and the wider NCR region.",
				ImageAlt: "Kids playing in supervised kids corner Delhi",
				PillText: "PREMIER EVENT CHILDCARE 🇮🇳",
			},
			Trust: Trust{
				Title:       "Why Parents in Delhi & NCR Trust Us",
				Description: "Child safety is at the heart of everything we do. We follow strict vetting and event-ready supervision standards for the fast-paced NCR wedding scene.",
			},
			Testimonials: []Testimonial{
				{Text: "The childcare setup worked seamlessly with our planner and venue timelines. Everything was handled professionally.", Author: "Parent", Location: "Delhi-NCR", Rating: 5},
			},
			FAQs:     commonFAQs(),
			Partners: true,
		},
		"hyderabad": {
			ID:     "hyderabad",
			Name:   "Hyderabad",
			Layout: []string{"hero", "pricing", "testimonials", "services", "trust", "reality", "how-it-works", "packages", "comparison", "local-insights", "faq", "contact", "about", "partners"},
			Hero: Hero{
				Title:    "Enjoy Your Wedding in Hyderabad. We’ll Take Care of the Little Ones.",
				Subtitle: "On-demand childcare and supervised kids' areas for Hyderabad weddings. Stress-free ceremonies for parents in Jubilee Hills, Banjara Hills, and beyond.",
				ImageAlt: "Kids playing in supervised kids corner Hyderabad",
				PillText: "PREMIER EVENT CHILDCARE 🇮🇳",
			},
			Trust: Trust{
				Title:       "Why Parents in Hyderabad Trust Us",
				Description: "Child safety is at the heart of everything we do. We bring high-end childcare standards to Hyderabad's elite wedding venues.",
			},
			Testimonials: []Testimonial{
				{Text: "Our Mehendi ran late in Jubilee Hills — the kid's corner kept our little guests engaged and we could enjoy the night.", Author: "Priya & Raj", Location: "Jubilee Hills", Rating: 5},
			},
			FAQs: commonFAQs(),
			LocalInsights: &LocalInsights{
				Title: "Why Hyderabad trusts The Wedding Nanny",
				Content: []string{
					"Hyderabad weddings mix long evenings and cosmopolitan venues. We design discreet kids' corners that fit into popular local venues—from Jubilee Hills homes to large banquet halls in HITEC City.",
				},
			},
			Partners: true,
		},
	}
}
