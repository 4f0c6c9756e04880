package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-pagegen/pkg/block"
	"github.com/goliatone/go-pagegen/pkg/content"
	"github.com/goliatone/go-pagegen/pkg/style"
)

// BlockContext is what a block renderer may read besides the block itself.
type BlockContext struct {
	Model    content.Model
	Style    style.Variant
	Tokens   style.Tokens
	Position int
	Total    int
}

// BlockRenderer finishes one block kind. It receives an instance whose props
// have already been substituted and returns the final instance; returning
// false drops the block from the output.
type BlockRenderer interface {
	Kind() block.Kind
	Render(inst Instance, ctx BlockContext) (Instance, bool)
}

// BlockRendererFunc adapts a function to BlockRenderer.
type BlockRendererFunc struct {
	For block.Kind
	Fn  func(inst Instance, ctx BlockContext) (Instance, bool)
}

func (f BlockRendererFunc) Kind() block.Kind { return f.For }

func (f BlockRendererFunc) Render(inst Instance, ctx BlockContext) (Instance, bool) {
	if f.Fn == nil {
		return inst, true
	}
	return f.Fn(inst, ctx)
}

// DefaultQuoteAuthor credits model testimonials stored without an author.
const DefaultQuoteAuthor = "Happy customer"

func builtinRenderers() []BlockRenderer {
	return []BlockRenderer{
		BlockRendererFunc{For: block.KindHero, Fn: renderHero},
		BlockRendererFunc{For: block.KindLogoRow, Fn: renderLogoRow},
		BlockRendererFunc{For: block.KindFeatureGrid, Fn: renderFeatureGrid},
		BlockRendererFunc{For: block.KindSplitImage, Fn: renderSplitImage},
		BlockRendererFunc{For: block.KindPricing, Fn: renderPricing},
		BlockRendererFunc{For: block.KindTestimonial, Fn: renderTestimonial},
		BlockRendererFunc{For: block.KindFAQ, Fn: renderFAQ},
		BlockRendererFunc{For: block.KindFooter, Fn: renderFooter},
	}
}

func renderHero(inst Instance, ctx BlockContext) (Instance, bool) {
	props, ok := inst.Props.(block.HeroProps)
	if !ok {
		return inst, false
	}
	if props.Image == "" && len(ctx.Model.Images) > 0 {
		props.Image = ctx.Model.Images[0]
	}
	if props.Image != "" {
		inst.Classes = append(inst.Classes, "hero-with-image")
	}
	inst.Props = props
	return inst, true
}

func renderLogoRow(inst Instance, _ BlockContext) (Instance, bool) {
	props, ok := inst.Props.(block.LogoRowProps)
	if !ok {
		return inst, false
	}
	props.Logos = nonEmpty(props.Logos)
	inst.Props = props
	return inst, true
}

func renderFeatureGrid(inst Instance, _ BlockContext) (Instance, bool) {
	props, ok := inst.Props.(block.FeatureGridProps)
	if !ok {
		return inst, false
	}
	items := props.Items[:0:0]
	for _, item := range props.Items {
		if strings.TrimSpace(item.Title) != "" {
			items = append(items, item)
		}
	}
	props.Items = items
	inst.Props = props
	inst.Classes = append(inst.Classes, "cols-"+strconv.Itoa(min(max(len(items), 1), 3)))
	return inst, true
}

func renderSplitImage(inst Instance, ctx BlockContext) (Instance, bool) {
	props, ok := inst.Props.(block.SplitImageProps)
	if !ok {
		return inst, false
	}
	if props.Align != "left" {
		props.Align = "right"
	}
	if props.Image == "" {
		switch n := len(ctx.Model.Images); {
		case n > 1:
			props.Image = ctx.Model.Images[1]
		case n == 1:
			props.Image = ctx.Model.Images[0]
		}
	}
	inst.Props = props
	inst.Classes = append(inst.Classes, "image-"+props.Align)
	return inst, true
}

func renderPricing(inst Instance, _ BlockContext) (Instance, bool) {
	props, ok := inst.Props.(block.PricingProps)
	if !ok {
		return inst, false
	}
	tiers := props.Tiers[:0:0]
	for _, tier := range props.Tiers {
		if strings.TrimSpace(tier.Name) == "" {
			continue
		}
		tier.Features = nonEmpty(tier.Features)
		tiers = append(tiers, tier)
	}
	props.Tiers = tiers
	inst.Props = props
	inst.Classes = append(inst.Classes, "tiers-"+strconv.Itoa(len(tiers)))
	return inst, true
}

// renderTestimonial prefers hydrated model testimonials over the preset's
// canned quotes.
func renderTestimonial(inst Instance, ctx BlockContext) (Instance, bool) {
	props, ok := inst.Props.(block.TestimonialProps)
	if !ok {
		return inst, false
	}
	if len(ctx.Model.Testimonials) > 0 {
		quotes := make([]block.Quote, 0, len(ctx.Model.Testimonials))
		for _, raw := range ctx.Model.Testimonials {
			text, author := content.Testimonial(raw)
			if text == "" {
				continue
			}
			if author == "" {
				author = DefaultQuoteAuthor
			}
			quotes = append(quotes, block.Quote{Text: text, Author: author})
		}
		if len(quotes) > 0 {
			props.Quotes = quotes
		}
	}
	inst.Props = props
	return inst, true
}

func renderFAQ(inst Instance, _ BlockContext) (Instance, bool) {
	props, ok := inst.Props.(block.FAQProps)
	if !ok {
		return inst, false
	}
	items := props.Items[:0:0]
	for _, item := range props.Items {
		if strings.TrimSpace(item.Question) != "" {
			items = append(items, item)
		}
	}
	props.Items = items
	inst.Props = props
	return inst, true
}

func renderFooter(inst Instance, ctx BlockContext) (Instance, bool) {
	props, ok := inst.Props.(block.FooterProps)
	if !ok {
		return inst, false
	}
	if props.BrandName == "" {
		props.BrandName = SubstituteString("{{brandName}}", ctx.Model)
	}
	if props.Copyright == "" {
		props.Copyright = "© " + props.BrandName
	}
	inst.Props = props
	return inst, true
}

func nonEmpty(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
