package sitegen

import "context"

// BundleExtractor produces a structured content bundle from the text
// content of uploaded artifacts. The local extractor and external AI
// adapters share this contract so the rest of the pipeline is agnostic to
// which one supplied the data.
//
// Implementations must honor context cancellation and deadlines. A
// returned error is always recoverable: callers fall back to the local
// Extract path for the affected artifacts.
type BundleExtractor interface {
	ClassifyAndExtract(ctx context.Context, texts []string) (*ContentBundle, error)
}
