// Package vertical classifies a business idea into one of ten fixed
// verticals using keyword-bucket scoring. Classification is total: every
// input yields a vertical, falling back to B2BSaaS.
package vertical

import "strings"

// Vertical tags the business category an idea belongs to.
type Vertical string

const (
	B2BSaaS        Vertical = "b2b_saas"
	Ecommerce      Vertical = "ecommerce"
	LocalService   Vertical = "local_service"
	Restaurant     Vertical = "restaurant"
	Healthcare     Vertical = "healthcare"
	Education      Vertical = "education"
	RealEstate     Vertical = "real_estate"
	Fitness        Vertical = "fitness"
	CreativeAgency Vertical = "creative_agency"
	Nonprofit      Vertical = "nonprofit"
)

// Default is returned when no evidence points anywhere.
const Default = B2BSaaS

// order fixes iteration for scoring and tie-breaks: on equal top scores the
// vertical listed first wins.
var order = []Vertical{
	B2BSaaS,
	Ecommerce,
	LocalService,
	Restaurant,
	Healthcare,
	Education,
	RealEstate,
	Fitness,
	CreativeAgency,
	Nonprofit,
}

// All returns the verticals in tie-break order.
func All() []Vertical {
	return append([]Vertical(nil), order...)
}

// Known reports whether v is one of the ten verticals.
func (v Vertical) Known() bool {
	for _, candidate := range order {
		if candidate == v {
			return true
		}
	}
	return false
}

// Label renders the vertical for humans ("real_estate" -> "Real Estate").
func (v Vertical) Label() string {
	parts := strings.Split(string(v), "_")
	for i, part := range parts {
		switch part {
		case "":
		case "b2b":
			parts[i] = "B2B"
		case "saas":
			parts[i] = "SaaS"
		default:
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

// Parse matches a free-form label against the known verticals, first exactly
// and then after normalising case, spaces and hyphens to underscores.
func Parse(label string) (Vertical, bool) {
	candidate := Vertical(label)
	if candidate.Known() {
		return candidate, true
	}
	normalised := Vertical(normalise(label))
	if normalised.Known() {
		return normalised, true
	}
	return "", false
}

func normalise(label string) string {
	lowered := strings.ToLower(strings.TrimSpace(label))
	lowered = strings.NewReplacer("-", "_", " ", "_").Replace(lowered)
	for strings.Contains(lowered, "__") {
		lowered = strings.ReplaceAll(lowered, "__", "_")
	}
	return strings.Trim(lowered, "_")
}
