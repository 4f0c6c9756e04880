package block

// Props is implemented by the typed property record of every block kind.
// The set is closed: only this package declares implementations.
type Props interface {
	Kind() Kind
	// Value returns the property record as a fresh Value tree.
	Value() Obj
	isProps()
}

// HeroProps is the opening banner.
type HeroProps struct {
	Headline     string `json:"headline"`
	Subheadline  string `json:"subheadline"`
	PrimaryCTA   string `json:"primaryCta"`
	SecondaryCTA string `json:"secondaryCta"`
	Image        string `json:"image,omitempty"`
}

// LogoRowProps is a strip of customer or partner names.
type LogoRowProps struct {
	Title string   `json:"title"`
	Logos []string `json:"logos"`
}

// FeatureItem is one cell of a feature grid.
type FeatureItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// FeatureGridProps lists product capabilities.
type FeatureGridProps struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Items    []FeatureItem `json:"items"`
}

// SplitImageProps pairs copy with an image. Align is "left" or "right" and
// names the side the image sits on.
type SplitImageProps struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Image string `json:"image"`
	CTA   string `json:"cta"`
	Align string `json:"align"`
}

// PricingTier is one plan column.
type PricingTier struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	CTA         string   `json:"cta"`
}

// PricingProps lists plans.
type PricingProps struct {
	Title string        `json:"title"`
	Tiers []PricingTier `json:"tiers"`
}

// Quote is a single testimonial.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Role   string `json:"role,omitempty"`
}

// TestimonialProps shows social proof.
type TestimonialProps struct {
	Title  string  `json:"title"`
	Quotes []Quote `json:"quotes"`
}

// FAQItem is a question and its answer.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQProps lists frequently asked questions.
type FAQProps struct {
	Title string    `json:"title"`
	Items []FAQItem `json:"items"`
}

// FooterProps closes the page.
type FooterProps struct {
	BrandName string   `json:"brandName"`
	Tagline   string   `json:"tagline"`
	Links     []string `json:"links"`
	Copyright string   `json:"copyright"`
}

// Unknown preserves a block whose type tag this build does not recognise.
type Unknown struct {
	Type string `json:"type"`
	Raw  Obj    `json:"-"`
}

func (HeroProps) Kind() Kind        { return KindHero }
func (LogoRowProps) Kind() Kind     { return KindLogoRow }
func (FeatureGridProps) Kind() Kind { return KindFeatureGrid }
func (SplitImageProps) Kind() Kind  { return KindSplitImage }
func (PricingProps) Kind() Kind     { return KindPricing }
func (TestimonialProps) Kind() Kind { return KindTestimonial }
func (FAQProps) Kind() Kind         { return KindFAQ }
func (FooterProps) Kind() Kind      { return KindFooter }
func (u Unknown) Kind() Kind        { return Kind(u.Type) }

func (HeroProps) isProps()        {}
func (LogoRowProps) isProps()     {}
func (FeatureGridProps) isProps() {}
func (SplitImageProps) isProps()  {}
func (PricingProps) isProps()     {}
func (TestimonialProps) isProps() {}
func (FAQProps) isProps()         {}
func (FooterProps) isProps()      {}
func (Unknown) isProps()          {}

func (p HeroProps) Value() Obj {
	return Obj{
		"headline":     Str(p.Headline),
		"subheadline":  Str(p.Subheadline),
		"primaryCta":   Str(p.PrimaryCTA),
		"secondaryCta": Str(p.SecondaryCTA),
		"image":        Str(p.Image),
	}
}

func (p LogoRowProps) Value() Obj {
	return Obj{
		"title": Str(p.Title),
		"logos": strs(p.Logos),
	}
}

func (p FeatureGridProps) Value() Obj {
	items := make(Seq, len(p.Items))
	for i, item := range p.Items {
		items[i] = Obj{
			"title":       Str(item.Title),
			"description": Str(item.Description),
			"icon":        Str(item.Icon),
		}
	}
	return Obj{
		"title":    Str(p.Title),
		"subtitle": Str(p.Subtitle),
		"items":    items,
	}
}

func (p SplitImageProps) Value() Obj {
	return Obj{
		"title": Str(p.Title),
		"body":  Str(p.Body),
		"image": Str(p.Image),
		"cta":   Str(p.CTA),
		"align": Str(p.Align),
	}
}

func (p PricingProps) Value() Obj {
	tiers := make(Seq, len(p.Tiers))
	for i, tier := range p.Tiers {
		tiers[i] = Obj{
			"name":        Str(tier.Name),
			"price":       Str(tier.Price),
			"period":      Str(tier.Period),
			"description": Str(tier.Description),
			"features":    strs(tier.Features),
			"cta":         Str(tier.CTA),
		}
	}
	return Obj{
		"title": Str(p.Title),
		"tiers": tiers,
	}
}

func (p TestimonialProps) Value() Obj {
	quotes := make(Seq, len(p.Quotes))
	for i, quote := range p.Quotes {
		quotes[i] = Obj{
			"text":   Str(quote.Text),
			"author": Str(quote.Author),
			"role":   Str(quote.Role),
		}
	}
	return Obj{
		"title":  Str(p.Title),
		"quotes": quotes,
	}
}

func (p FAQProps) Value() Obj {
	items := make(Seq, len(p.Items))
	for i, item := range p.Items {
		items[i] = Obj{
			"question": Str(item.Question),
			"answer":   Str(item.Answer),
		}
	}
	return Obj{
		"title": Str(p.Title),
		"items": items,
	}
}

func (p FooterProps) Value() Obj {
	return Obj{
		"brandName": Str(p.BrandName),
		"tagline":   Str(p.Tagline),
		"links":     strs(p.Links),
		"copyright": Str(p.Copyright),
	}
}

func (u Unknown) Value() Obj {
	return CloneObj(u.Raw)
}

// Decode builds the typed property record for kind from a Value tree. Kinds
// outside the known set decode to Unknown with the raw tree preserved.
func Decode(kind Kind, o Obj) Props {
	switch kind {
	case KindHero:
		return HeroProps{
			Headline:     o.String("headline"),
			Subheadline:  o.String("subheadline"),
			PrimaryCTA:   o.String("primaryCta"),
			SecondaryCTA: o.String("secondaryCta"),
			Image:        o.String("image"),
		}
	case KindLogoRow:
		return LogoRowProps{
			Title: o.String("title"),
			Logos: o.Strings("logos"),
		}
	case KindFeatureGrid:
		var items []FeatureItem
		for _, item := range o.Objs("items") {
			items = append(items, FeatureItem{
				Title:       item.String("title"),
				Description: item.String("description"),
				Icon:        item.String("icon"),
			})
		}
		return FeatureGridProps{
			Title:    o.String("title"),
			Subtitle: o.String("subtitle"),
			Items:    items,
		}
	case KindSplitImage:
		return SplitImageProps{
			Title: o.String("title"),
			Body:  o.String("body"),
			Image: o.String("image"),
			CTA:   o.String("cta"),
			Align: o.String("align"),
		}
	case KindPricing:
		var tiers []PricingTier
		for _, tier := range o.Objs("tiers") {
			tiers = append(tiers, PricingTier{
				Name:        tier.String("name"),
				Price:       tier.String("price"),
				Period:      tier.String("period"),
				Description: tier.String("description"),
				Features:    tier.Strings("features"),
				CTA:         tier.String("cta"),
			})
		}
		return PricingProps{
			Title: o.String("title"),
			Tiers: tiers,
		}
	case KindTestimonial:
		var quotes []Quote
		for _, quote := range o.Objs("quotes") {
			quotes = append(quotes, Quote{
				Text:   quote.String("text"),
				Author: quote.String("author"),
				Role:   quote.String("role"),
			})
		}
		return TestimonialProps{
			Title:  o.String("title"),
			Quotes: quotes,
		}
	case KindFAQ:
		var items []FAQItem
		for _, item := range o.Objs("items") {
			items = append(items, FAQItem{
				Question: item.String("question"),
				Answer:   item.String("answer"),
			})
		}
		return FAQProps{
			Title: o.String("title"),
			Items: items,
		}
	case KindFooter:
		return FooterProps{
			BrandName: o.String("brandName"),
			Tagline:   o.String("tagline"),
			Links:     o.Strings("links"),
			Copyright: o.String("copyright"),
		}
	default:
		return Unknown{Type: string(kind), Raw: CloneObj(o)}
	}
}
