package sitegen

import (
	"sort"
	"strings"
)

// DefaultSectionCap is the per-section display cap applied to ranked
// section entries. Structured list fields (services, team) have their own
// caps and are not affected.
const DefaultSectionCap = 3

// Aspect-ratio thresholds for image role assignment.
const (
	bannerAspectRatio   = 2.0
	portraitAspectRatio = 0.8
)

// ArtifactResult pairs an artifact with its classification and the
// structured content extracted from it. Results are produced per artifact
// and owned by the aggregation that consumes them.
type ArtifactResult struct {
	Artifact       *Artifact       `json:"artifact"`
	Classification Classification  `json:"classification"`
	Partial        *PartialContent `json:"partial,omitempty"`
}

// SectionEntry is one ranked candidate for a section.
type SectionEntry struct {
	ArtifactID string         `json:"artifactId"`
	Name       string         `json:"name"`
	Confidence float64        `json:"confidence"`
	Matched    []KeywordMatch `json:"matchedKeywords,omitempty"`
}

// AggregateResult is the output of aggregation: the merged content bundle
// plus the ranked per-section candidates used for display and selection.
type AggregateResult struct {
	Bundle   *ContentBundle             `json:"bundle"`
	Sections map[Section][]SectionEntry `json:"sections"`
}

// Aggregator consolidates per-artifact classification and extraction
// results into a single content bundle.
type Aggregator struct {
	profiles   Profiles
	sectionCap int
}

// NewAggregator creates an Aggregator over the given profiles with the
// default per-section display cap.
func NewAggregator(profiles Profiles) *Aggregator {
	return &Aggregator{profiles: profiles, sectionCap: DefaultSectionCap}
}

// Aggregate merges artifact results into a content bundle. Results are
// processed in input order, which makes scalar merging first-writer-wins
// across artifacts. Images without a classified section are placed by
// aspect ratio; artifacts no classifier could place end up in the
// unmatched residue.
func (g *Aggregator) Aggregate(results []ArtifactResult) *AggregateResult {
	bundle := &ContentBundle{}
	sections := make(map[Section][]SectionEntry)

	for _, r := range results {
		if r.Artifact == nil {
			continue
		}

		section := g.resolveSection(r)
		if section == "" {
			bundle.Unmatched = append(bundle.Unmatched, r.Artifact.Name)
			continue
		}

		sections[section] = append(sections[section], SectionEntry{
			ArtifactID: r.Artifact.ID,
			Name:       r.Artifact.Name,
			Confidence: r.Classification.Confidence,
			Matched:    r.Classification.Matched,
		})

		switch r.Artifact.MediaKind {
		case MediaText:
			bundle.Merge(r.Partial)
		case MediaImage:
			g.assignImageRole(bundle, r.Artifact)
		}
	}

	// Rank candidates within each section and cap for display. The sort
	// is stable so equal confidences keep input order.
	for section, entries := range sections {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Confidence > entries[j].Confidence
		})
		if len(entries) > g.sectionCap {
			entries = entries[:g.sectionCap]
		}
		sections[section] = entries
	}

	bundle.Finalize()
	bundle.Confidence = g.confidence(len(sections), len(bundle.Unmatched))

	return &AggregateResult{Bundle: bundle, Sections: sections}
}

// resolveSection returns the final section for an artifact, applying the
// aggregation-time aspect-ratio heuristic for unclassified images.
func (g *Aggregator) resolveSection(r ArtifactResult) Section {
	if !r.Classification.Unmatched() {
		return r.Classification.Section
	}
	if r.Artifact.MediaKind != MediaImage {
		return ""
	}

	switch ratio := r.Artifact.AspectRatio(); {
	case ratio > bannerAspectRatio:
		return SectionHero
	case ratio > 0 && ratio < portraitAspectRatio:
		return SectionTeam
	default:
		return SectionGallery
	}
}

// assignImageRole buckets an image into logos, banners, team, or general
// by filename substring first, then by aspect ratio.
func (g *Aggregator) assignImageRole(bundle *ContentBundle, a *Artifact) {
	if a.Image == nil {
		return
	}
	ref := ImageRef{Name: a.Name, Ref: a.Image.Ref, AspectRatio: a.AspectRatio()}
	name := strings.ToLower(a.Name)

	switch {
	case strings.Contains(name, "logo"):
		bundle.Images.Logos = append(bundle.Images.Logos, ref)
	case strings.Contains(name, "banner") || strings.Contains(name, "hero"):
		bundle.Images.Banners = append(bundle.Images.Banners, ref)
	case strings.Contains(name, "team") || strings.Contains(name, "팀"):
		bundle.Images.Team = append(bundle.Images.Team, ref)
	case ref.AspectRatio > bannerAspectRatio:
		bundle.Images.Banners = append(bundle.Images.Banners, ref)
	case ref.AspectRatio > 0 && ref.AspectRatio < portraitAspectRatio:
		bundle.Images.Team = append(bundle.Images.Team, ref)
	default:
		bundle.Images.General = append(bundle.Images.General, ref)
	}
}

// confidence computes the diagnostic coverage metric: matched section
// coverage, discounted when unmatched content exists.
func (g *Aggregator) confidence(matchedSections, unmatched int) float64 {
	if len(g.profiles) == 0 {
		return 0
	}
	coverage := float64(matchedSections) / float64(len(g.profiles))
	if unmatched > 0 {
		return coverage * 0.8
	}
	return coverage
}
