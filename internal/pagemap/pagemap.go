package pagemap

import "strings"

// Page groups the content-block sections that make up one public page. The
// mapping is curated by hand so the admin content manager can present blocks
// by page instead of raw section keys.
type Page struct {
	Key      string
	Sections []string
}

// OtherPage is the bucket for sections not declared under any page.
const OtherPage = "other"

var pages = []Page{
	{Key: "home", Sections: []string{"hero", "values", "impact_stats", "testimonials", "home_cta"}},
	{Key: "products", Sections: []string{"products_header", "product_benefits", "product_compare"}},
	{Key: "journal", Sections: []string{"journal_header", "journal_featured"}},
	{Key: "story", Sections: []string{"story_hero", "story_timeline", "story_team"}},
	{Key: "pricing", Sections: []string{"pricing_header", "pricing_tiers", "pricing_faq"}},
	{Key: "custom-solutions", Sections: []string{"custom_hero", "custom_steps", "custom_materials"}},
	{Key: "impact", Sections: []string{"impact_hero", "impact_metrics", "impact_partners"}},
	{Key: "careers", Sections: []string{"careers_hero", "careers_positions"}},
	{Key: "contact", Sections: []string{"contact_header", "contact_details"}},
}

var sectionIndex = buildSectionIndex()

func buildSectionIndex() map[string]string {
	index := make(map[string]string)
	for _, page := range pages {
		for _, section := range page.Sections {
			index[section] = page.Key
		}
	}
	return index
}

// Pages returns the curated page groupings in display order.
func Pages() []Page {
	out := make([]Page, len(pages))
	for i, page := range pages {
		sections := make([]string, len(page.Sections))
		copy(sections, page.Sections)
		out[i] = Page{Key: page.Key, Sections: sections}
	}
	return out
}

// Sections returns the declared section keys for a page, or nil when the page
// is unknown. The "other" bucket has no declared sections.
func Sections(page string) []string {
	page = strings.ToLower(strings.TrimSpace(page))
	for _, p := range pages {
		if p.Key == page {
			sections := make([]string, len(p.Sections))
			copy(sections, p.Sections)
			return sections
		}
	}
	return nil
}

// PageFor resolves which page a section belongs to, falling back to the
// "other" bucket for undeclared sections.
func PageFor(section string) string {
	if page, ok := sectionIndex[strings.TrimSpace(section)]; ok {
		return page
	}
	return OtherPage
}

// Declared reports whether the section is claimed by any page.
func Declared(section string) bool {
	_, ok := sectionIndex[strings.TrimSpace(section)]
	return ok
}
