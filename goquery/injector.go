// Package goquery provides a DOM-based template injector.
// Repeat regions and image sources are located through a parsed document
// rather than regex matching over raw markup, so nested or untidy
// templates do not break substitution.
package goquery

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jilee1212/sitegen"
)

// DefaultPlaceholder replaces tokens with no corresponding bundle value.
const DefaultPlaceholder = "[sample text]"

// teamImagePlaceholder is used for members without an uploaded photo.
const teamImagePlaceholder = "images/team-placeholder.jpg"

// tokenRe matches {{TOKEN_NAME}} placeholders.
var tokenRe = regexp.MustCompile(`\{\{[A-Za-z0-9_]+\}\}`)

// Ensure Injector implements sitegen.Injector at compile time.
var _ sitegen.Injector = (*Injector)(nil)

// Injector implements sitegen.Injector using a parsed HTML document.
type Injector struct{}

// NewInjector creates a new Injector.
func NewInjector() *Injector {
	return &Injector{}
}

// Inject substitutes the bundle into the template. An empty template is
// returned unchanged with Applied=false and an EINVALID error; malformed
// but non-empty templates degrade to leaving unmatched regions as-is.
// Injecting already-injected output with the same bundle is a no-op.
func (in *Injector) Inject(template string, bundle *sitegen.ContentBundle) (*sitegen.InjectResult, error) {
	if strings.TrimSpace(template) == "" {
		return &sitegen.InjectResult{HTML: template},
			sitegen.Errorf(sitegen.EINVALID, "template is empty")
	}
	if bundle == nil {
		bundle = &sitegen.ContentBundle{}
	}

	out := template
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(template)); err == nil {
		expandRepeats(doc, bundle)
		swapImageSources(doc, bundle)
		if rendered, err := doc.Html(); err == nil {
			out = rendered
		}
	}

	out = substituteTokens(out, tokenValues(bundle))

	return &sitegen.InjectResult{
		HTML:            out,
		AppliedSections: bundle.AppliedSections(),
		Applied:         true,
	}, nil
}

// expandRepeats replaces each known data-repeat container with one
// rendered fragment per bundle list item. Containers for empty lists are
// removed outright; unknown repeat identifiers are left untouched so
// their tokens fall through to the default fill.
func expandRepeats(doc *goquery.Document, bundle *sitegen.ContentBundle) {
	doc.Find("[data-repeat]").Each(func(_ int, sel *goquery.Selection) {
		id, _ := sel.Attr("data-repeat")
		switch sitegen.Section(id) {
		case sitegen.SectionServices:
			replaceRegion(sel, renderServices(bundle.Services))
		case sitegen.SectionTeam:
			replaceRegion(sel, renderTeam(bundle.Team))
		case sitegen.SectionGallery, sitegen.SectionPortfolio:
			replaceRegion(sel, renderGallery(bundle.Images.General))
		}
	})
}

// replaceRegion swaps the container for the rendered fragments, or
// removes it when there is nothing to render.
func replaceRegion(sel *goquery.Selection, fragments string) {
	if fragments == "" {
		sel.Remove()
		return
	}
	sel.ReplaceWithHtml(fragments)
}

func renderServices(services []sitegen.Service) string {
	var b strings.Builder
	for _, s := range services {
		b.WriteString(`<div class="service-item"><h3>`)
		b.WriteString(html.EscapeString(s.Title))
		b.WriteString(`</h3><p>`)
		b.WriteString(html.EscapeString(s.Description))
		b.WriteString(`</p></div>`)
	}
	return b.String()
}

func renderTeam(team []sitegen.TeamMember) string {
	var b strings.Builder
	for _, m := range team {
		image := m.ImageRef
		if image == "" {
			image = teamImagePlaceholder
		}
		b.WriteString(`<div class="team-member"><img src="`)
		b.WriteString(html.EscapeString(image))
		b.WriteString(`" alt="`)
		b.WriteString(html.EscapeString(m.Name))
		b.WriteString(`"/><h4>`)
		b.WriteString(html.EscapeString(m.Name))
		b.WriteString(`</h4><span>`)
		b.WriteString(html.EscapeString(m.Position))
		b.WriteString(`</span><p>`)
		b.WriteString(html.EscapeString(m.Description))
		b.WriteString(`</p></div>`)
	}
	return b.String()
}

func renderGallery(images []sitegen.ImageRef) string {
	var b strings.Builder
	for _, img := range images {
		b.WriteString(`<div class="gallery-item"><img src="`)
		b.WriteString(html.EscapeString(img.Ref))
		b.WriteString(`" alt="`)
		b.WriteString(html.EscapeString(img.Name))
		b.WriteString(`"/></div>`)
	}
	return b.String()
}

// swapImageSources points logo and banner img tags at the first uploaded
// image of the matching role. Placeholder paths are preserved when the
// bundle has no image for the role.
func swapImageSources(doc *goquery.Document, bundle *sitegen.ContentBundle) {
	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		lower := strings.ToLower(src)
		switch {
		case strings.Contains(lower, "logo") && len(bundle.Images.Logos) > 0:
			sel.SetAttr("src", bundle.Images.Logos[0].Ref)
		case strings.Contains(lower, "banner") && len(bundle.Images.Banners) > 0:
			sel.SetAttr("src", bundle.Images.Banners[0].Ref)
		}
	})
}

// tokenValues maps template token names to bundle values. Empty values
// are omitted so the default fill handles them.
func tokenValues(bundle *sitegen.ContentBundle) map[string]string {
	values := map[string]string{
		"COMPANY_NAME":         bundle.Company.Name,
		"COMPANY_DESCRIPTION":  bundle.Company.Description,
		"COMPANY_INDUSTRY":     bundle.Company.Industry,
		"HERO_TITLE":           bundle.Hero.Title,
		"HERO_SUBTITLE":        bundle.Hero.Subtitle,
		"HERO_TEXT":            bundle.Hero.Text,
		"PROFESSIONAL_TAGLINE": bundle.Hero.Subtitle,
		"CONTACT_PHONE":        bundle.Contact.Phone,
		"CONTACT_EMAIL":        bundle.Contact.Email,
		"CONTACT_ADDRESS":      bundle.Contact.Address,
	}
	if len(bundle.Images.Logos) > 0 {
		values["LOGO_URL"] = bundle.Images.Logos[0].Ref
	}
	if len(bundle.Images.Banners) > 0 {
		values["HERO_IMAGE"] = bundle.Images.Banners[0].Ref
	}
	for name, value := range values {
		if value == "" {
			delete(values, name)
		}
	}
	return values
}

// substituteTokens replaces every {{TOKEN}} occurrence with its bundle
// value, then fills all remaining tokens with the visible placeholder so
// no raw token survives in the output.
func substituteTokens(s string, values map[string]string) string {
	return tokenRe.ReplaceAllStringFunc(s, func(token string) string {
		name := strings.Trim(token, "{}")
		if value, ok := values[name]; ok {
			return html.EscapeString(value)
		}
		return DefaultPlaceholder
	})
}
