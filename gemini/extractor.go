// Package gemini provides a BundleExtractor backed by Google Gemini, for
// deployments where no local Ollama server is available.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/jilee1212/sitegen"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Extractor implements sitegen.BundleExtractor at compile time.
var _ sitegen.BundleExtractor = (*Extractor)(nil)

// Extractor implements sitegen.BundleExtractor using Google Gemini.
type Extractor struct {
	client *genai.Client
}

// NewExtractor creates a new Extractor.
func NewExtractor(client *genai.Client) *Extractor {
	return &Extractor{client: client}
}

// ClassifyAndExtract sends the texts to Gemini and maps the embedded JSON
// object in its response onto a content bundle.
func (e *Extractor) ClassifyAndExtract(ctx context.Context, texts []string) (*sitegen.ContentBundle, error) {
	if len(texts) == 0 {
		return nil, sitegen.Errorf(sitegen.EINVALID, "no texts to analyze")
	}

	prompt := BuildUserPrompt(texts)
	config := BuildConfig()

	result, err := e.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, sitegen.Errorf(sitegen.EUNAVAILABLE, "gemini request failed: %v", err)
	}
	if result == nil {
		return nil, sitegen.Errorf(sitegen.EINTERNAL, "gemini returned nil result")
	}

	return sitegen.ParseBundleResponse(result.Text())
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a website content analyst. Extract structured marketing-site content from the provided company documents. Respond with a single valid JSON object of the shape {company:{name,industry,description}, hero:{title,subtitle,description}, services:[{title,description,features}], teamMembers:[{name,position,description}], contact:{phone,email,address}, confidence} and nothing else.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the uploaded texts.
func BuildUserPrompt(texts []string) string {
	var sb strings.Builder
	sb.WriteString("<documents>\n")
	for i, text := range texts {
		sb.WriteString("<document>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<content>%s</content>\n", text)
		sb.WriteString("</document>\n")
	}
	sb.WriteString("</documents>\n")
	return sb.String()
}
