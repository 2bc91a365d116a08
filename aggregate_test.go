package sitegen_test

import (
	"fmt"
	"testing"

	"github.com/jilee1212/sitegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textResult(name, company string, section sitegen.Section, confidence float64) sitegen.ArtifactResult {
	return sitegen.ArtifactResult{
		Artifact:       &sitegen.Artifact{ID: name, Name: name, MediaKind: sitegen.MediaText, Text: "..."},
		Classification: sitegen.Classification{Section: section, Confidence: confidence},
		Partial:        &sitegen.PartialContent{CompanyName: company},
	}
}

func imageResult(name string, width, height int) sitegen.ArtifactResult {
	return sitegen.ArtifactResult{
		Artifact: &sitegen.Artifact{
			ID:        name,
			Name:      name,
			MediaKind: sitegen.MediaImage,
			Image:     &sitegen.ImageMeta{Width: width, Height: height, Ref: "images/" + name},
		},
	}
}

func TestAggregator_Aggregate(t *testing.T) {
	t.Parallel()

	agg := sitegen.NewAggregator(sitegen.DefaultProfiles())

	t.Run("scalar merge is first writer wins in input order", func(t *testing.T) {
		t.Parallel()

		got := agg.Aggregate([]sitegen.ArtifactResult{
			textResult("a.txt", "한빛", sitegen.SectionHero, 0.8),
			textResult("b.txt", "다른회사", sitegen.SectionHero, 0.9),
		})

		assert.Equal(t, "한빛", got.Bundle.Company.Name)
	})

	t.Run("entries are ranked by confidence and capped at three", func(t *testing.T) {
		t.Parallel()

		var results []sitegen.ArtifactResult
		for i, conf := range []float64{0.4, 0.9, 0.5, 0.7} {
			results = append(results, textResult(fmt.Sprintf("t%d.txt", i), "", sitegen.SectionServices, conf))
		}

		got := agg.Aggregate(results)

		entries := got.Sections[sitegen.SectionServices]
		require.Len(t, entries, 3)
		assert.Equal(t, "t1.txt", entries[0].Name)
		assert.Equal(t, "t3.txt", entries[1].Name)
		assert.Equal(t, "t2.txt", entries[2].Name)
	})

	t.Run("unclassified images are placed by aspect ratio", func(t *testing.T) {
		t.Parallel()

		got := agg.Aggregate([]sitegen.ArtifactResult{
			imageResult("wide.jpg", 3000, 1000),    // ratio 3.0 → banner
			imageResult("portrait.jpg", 600, 900),  // ratio 0.67 → team
			imageResult("square.jpg", 800, 800),    // ratio 1.0 → gallery
		})

		assert.Len(t, got.Bundle.Images.Banners, 1)
		assert.Len(t, got.Bundle.Images.General, 1)
		assert.Empty(t, got.Bundle.Unmatched)
		// Portrait image becomes a placeholder team member via Finalize.
		require.Len(t, got.Bundle.Team, 1)
		assert.Equal(t, "images/portrait.jpg", got.Bundle.Team[0].ImageRef)
	})

	t.Run("filename role beats aspect ratio", func(t *testing.T) {
		t.Parallel()

		got := agg.Aggregate([]sitegen.ArtifactResult{
			{
				Artifact: &sitegen.Artifact{
					ID: "logo", Name: "logo.png", MediaKind: sitegen.MediaImage,
					Image: &sitegen.ImageMeta{Width: 900, Height: 300, Ref: "images/logo.png"},
				},
				Classification: sitegen.Classification{Section: sitegen.SectionHero, Confidence: 0.8},
			},
		})

		require.Len(t, got.Bundle.Images.Logos, 1)
		assert.Empty(t, got.Bundle.Images.Banners)
	})

	t.Run("unmatched text lands in the residue and discounts confidence", func(t *testing.T) {
		t.Parallel()

		withResidue := agg.Aggregate([]sitegen.ArtifactResult{
			textResult("a.txt", "한빛", sitegen.SectionHero, 0.8),
			{
				Artifact: &sitegen.Artifact{ID: "x", Name: "mystery.txt", MediaKind: sitegen.MediaText, Text: "?"},
				Partial:  &sitegen.PartialContent{},
			},
		})
		clean := agg.Aggregate([]sitegen.ArtifactResult{
			textResult("a.txt", "한빛", sitegen.SectionHero, 0.8),
		})

		assert.Equal(t, []string{"mystery.txt"}, withResidue.Bundle.Unmatched)
		assert.Less(t, withResidue.Bundle.Confidence, clean.Bundle.Confidence)
	})

	t.Run("empty input yields an empty bundle", func(t *testing.T) {
		t.Parallel()

		got := agg.Aggregate(nil)

		assert.Empty(t, got.Bundle.Company.Name)
		assert.Empty(t, got.Sections)
		assert.Zero(t, got.Bundle.Confidence)
	})
}
