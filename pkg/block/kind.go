package block

// Kind tags a block with one of the eight section types.
type Kind string

const (
	KindHero        Kind = "hero"
	KindLogoRow     Kind = "logo_row"
	KindFeatureGrid Kind = "feature_grid"
	KindSplitImage  Kind = "split_image"
	KindPricing     Kind = "pricing"
	KindTestimonial Kind = "testimonial"
	KindFAQ         Kind = "faq"
	KindFooter      Kind = "footer"
)

var kinds = []Kind{
	KindHero,
	KindLogoRow,
	KindFeatureGrid,
	KindSplitImage,
	KindPricing,
	KindTestimonial,
	KindFAQ,
	KindFooter,
}

// Kinds lists the known block kinds in declaration order.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// Known reports whether k is one of the eight block kinds.
func (k Kind) Known() bool {
	for _, candidate := range kinds {
		if candidate == k {
			return true
		}
	}
	return false
}

// Anchor reports whether blocks of this kind are pinned in place by layout
// shuffles.
func (k Kind) Anchor() bool {
	return k == KindHero || k == KindFooter
}
