package sitegen

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Confidence constants used by the classifier.
const (
	// FilenameConfidence is assigned when a section keyword appears in
	// the artifact filename. Filename hints are strong signals.
	FilenameConfidence = 0.8

	// VideoDefaultConfidence is assigned to the duration-based video
	// default when the filename carries no hint.
	VideoDefaultConfidence = 0.5

	// ScoreThreshold is the minimum content-scoring confidence required
	// to accept a section match. At or below it the artifact is left
	// unmatched.
	ScoreThreshold = 0.3

	// shortVideoSeconds is the cutoff between hero and portfolio videos.
	shortVideoSeconds = 60
)

// KeywordMatch records one matched keyword and its occurrence count.
type KeywordMatch struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// Classification is the per-artifact output of the classifier. A zero
// Section means the artifact is unmatched and belongs in the residue.
type Classification struct {
	Section    Section        `json:"section,omitempty"`
	Confidence float64        `json:"confidence"`
	Matched    []KeywordMatch `json:"matchedKeywords,omitempty"`
}

// Unmatched reports whether no section was resolved.
func (c Classification) Unmatched() bool {
	return c.Section == ""
}

// Classifier assigns uploaded artifacts to destination sections using
// filename heuristics first, then content keyword scoring. It is a pure
// function over the artifact and its immutable profile list; Classify
// never fails, malformed input degrades to an unmatched result.
type Classifier struct {
	profiles Profiles
}

// NewClassifier creates a Classifier over an ordered profile list.
func NewClassifier(profiles Profiles) *Classifier {
	return &Classifier{profiles: profiles}
}

// Classify resolves the destination section for an artifact.
//
// Resolution order:
//  1. Filename keyword match (confidence 0.8). Overlapping matches are
//     broken by the highest profile priority, then by profile
//     registration order.
//  2. Media-kind default: images stay unmatched so the aggregator can
//     place them by aspect ratio; videos default to hero (≤60s) or
//     portfolio.
//  3. Content keyword scoring for text artifacts.
func (c *Classifier) Classify(a *Artifact) Classification {
	if a == nil {
		return Classification{}
	}

	if match, ok := c.classifyByFilename(a); ok {
		return match
	}

	switch a.MediaKind {
	case MediaImage:
		// Defer to aggregation-time aspect-ratio placement.
		return Classification{}
	case MediaVideo:
		section := SectionHero
		if a.Video != nil && a.Video.DurationSeconds > shortVideoSeconds {
			section = SectionPortfolio
		}
		return Classification{Section: section, Confidence: VideoDefaultConfidence}
	case MediaText:
		return c.classifyByContent(a.Text)
	}

	return Classification{}
}

// classifyByFilename matches section keywords against the normalized
// filename (extension stripped, lowercased).
func (c *Classifier) classifyByFilename(a *Artifact) (Classification, bool) {
	base := strings.ToLower(strings.TrimSuffix(a.Name, filepath.Ext(a.Name)))
	if base == "" {
		return Classification{}, false
	}

	var best *SectionProfile
	var matched KeywordMatch
	for i := range c.profiles {
		profile := &c.profiles[i]
		for _, keyword := range profile.Keywords {
			if !strings.Contains(base, strings.ToLower(keyword)) {
				continue
			}
			// Registration order breaks priority ties, so strictly
			// greater priority is required to replace an earlier match.
			if best == nil || profile.Priority > best.Priority {
				best = profile
				matched = KeywordMatch{Keyword: keyword, Count: 1}
			}
			break
		}
	}
	if best == nil {
		return Classification{}, false
	}

	return Classification{
		Section:    best.Section,
		Confidence: FilenameConfidence,
		Matched:    []KeywordMatch{matched},
	}, true
}

// classifyByContent scores decoded text against every profile and
// returns the best match, or an unmatched result when the best
// confidence is at or below the threshold. Image-kind profiles
// participate too: a document about the photo gallery still belongs to
// the gallery section.
func (c *Classifier) classifyByContent(text string) Classification {
	if strings.TrimSpace(text) == "" {
		return Classification{}
	}

	var best Classification
	var bestProfile *SectionProfile
	for i := range c.profiles {
		profile := &c.profiles[i]

		var matched []KeywordMatch
		score := 0
		for _, keyword := range profile.Keywords {
			count := countOccurrences(text, keyword)
			if count == 0 {
				continue
			}
			matched = append(matched, KeywordMatch{Keyword: keyword, Count: count})
			score += count
		}
		if score == 0 {
			continue
		}

		confidence := float64(score) / 10
		if confidence > 1 {
			confidence = 1
		}

		if bestProfile == nil ||
			confidence > best.Confidence ||
			(confidence == best.Confidence && profile.Priority > bestProfile.Priority) {
			best = Classification{Section: profile.Section, Confidence: confidence, Matched: matched}
			bestProfile = profile
		}
	}

	if best.Confidence <= ScoreThreshold {
		return Classification{}
	}
	return best
}

// countOccurrences counts case-insensitive, regex-escaped occurrences of
// a keyword in text.
func countOccurrences(text, keyword string) int {
	if keyword == "" {
		return 0
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(keyword))
	if err != nil {
		return 0
	}
	return len(re.FindAllStringIndex(text, -1))
}
