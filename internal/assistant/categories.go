package assistant

import "strings"

// Category is one selectable job category with its human description.
type Category struct {
	Name        string
	Description string
}

// Categories is the fixed job category table, in display order.
var Categories = []Category{
	{"data entry", "Data input, processing, and management tasks"},
	{"sales & marketing", "Sales, marketing, and business development roles"},
	{"delivery & logistics", "Delivery, transport, and logistics positions"},
	{"customer service", "Customer support and service roles"},
	{"finance & accounting", "Financial, accounting, and bookkeeping jobs"},
	{"admin & office work", "Administrative and office support positions"},
	{"teaching / training", "Education, training, and tutoring roles"},
	{"internships / attachments", "Internship and attachment opportunities"},
	{"software engineering", "Programming, development, and tech roles"},
}

// CategoryNames returns the category names in display order.
func CategoryNames() []string {
	out := make([]string, len(Categories))
	for i, c := range Categories {
		out[i] = c.Name
	}
	return out
}

// MatchCategory resolves free text to a known category name. It accepts an
// exact name or any text containing one, and returns "" when nothing
// matches.
func MatchCategory(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return ""
	}
	for _, c := range Categories {
		if text == c.Name {
			return c.Name
		}
	}
	for _, c := range Categories {
		if strings.Contains(text, c.Name) {
			return c.Name
		}
	}
	return ""
}

func categoryBullets() string {
	var sb strings.Builder
	for _, c := range Categories {
		sb.WriteString("• ")
		sb.WriteString(c.Name)
		sb.WriteString(": ")
		sb.WriteString(c.Description)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
