// Package pipeline orchestrates site generation. It coordinates upload
// decoding, classification, extraction, aggregation, and template
// injection into one generation run.
package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/jilee1212/sitegen"
	"github.com/jilee1212/sitegen/bloom"
	"github.com/jilee1212/sitegen/decode"
	"golang.org/x/sync/errgroup"
)

// Duplicate-filter sizing for one generator lifetime.
const (
	filterExpectedUploads   = 10000
	filterFalsePositiveRate = 0.01
	defaultConcurrency      = 4
)

// Upload is one file submitted for generation.
type Upload struct {
	Name    string
	Content []byte
}

// UploadError records a per-file failure. Failures never abort the run.
type UploadError struct {
	Name string `json:"name"`
	Err  error  `json:"error"`
}

// Result holds the outcome of one generation run.
type Result struct {
	HTML     string
	Bundle   *sitegen.ContentBundle
	Summary  sitegen.Summary
	Sections map[sitegen.Section][]sitegen.SectionEntry

	// Skipped lists uploads dropped as duplicates of earlier content.
	Skipped []string

	// Errors lists uploads that could not be processed.
	Errors []UploadError

	// GenerationID is set when the run was recorded in the history.
	GenerationID string
}

// ProgressEvent reports progress during a generation run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Name      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting generation progress.
type ProgressFunc func(event ProgressEvent)

// Generator orchestrates one or more generation runs. External and
// Generations are optional; everything else is required.
type Generator struct {
	Decoder     *decode.Decoder
	Classifier  *sitegen.Classifier
	Aggregator  *sitegen.Aggregator
	Injector    sitegen.Injector
	External    sitegen.BundleExtractor
	Generations sitegen.GenerationService
	Logger      *slog.Logger
	Concurrency int

	// mu guards seen: the filter is not safe for concurrent use and one
	// generator may serve overlapping runs.
	mu   sync.Mutex
	seen *bloom.Filter
}

// uploadResult holds the outcome of processing a single upload.
type uploadResult struct {
	position int
	name     string
	artifact *sitegen.Artifact
	class    sitegen.Classification
	partial  *sitegen.PartialContent
	err      error
}

// Generate runs the full pipeline for one template and set of uploads.
// Per-upload failures are collected in the result; the only errors
// returned are invalid arguments and injection failures.
func (g *Generator) Generate(ctx context.Context, template *sitegen.Template, uploads []Upload, progress ProgressFunc) (*Result, error) {
	if template == nil {
		return nil, sitegen.Errorf(sitegen.EINVALID, "template required")
	}
	if err := template.Validate(); err != nil {
		return nil, err
	}
	if len(uploads) == 0 {
		return nil, sitegen.Errorf(sitegen.EINVALID, "no uploads to process")
	}

	result := &Result{}

	// Drop re-uploads of identical content before fanning out.
	g.mu.Lock()
	if g.seen == nil {
		g.seen = bloom.NewFilter(filterExpectedUploads, filterFalsePositiveRate)
	}
	var fresh []Upload
	for _, u := range uploads {
		hash := decode.Hash(u.Content)
		if g.seen.Test(hash) {
			result.Skipped = append(result.Skipped, u.Name)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressSkipped, Name: u.Name, Total: len(uploads)})
			}
			continue
		}
		g.seen.Add(hash)
		fresh = append(fresh, u)
	}
	g.mu.Unlock()

	total := len(fresh)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := g.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	resultCh := make(chan uploadResult, total)
	var completed atomic.Int64

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)

	go func() {
		for i, u := range fresh {
			eg.Go(func() error {
				resultCh <- g.processUpload(gctx, i, u)
				return nil
			})
		}
		_ = eg.Wait()
		close(resultCh)
	}()

	// Collect results back into input order so aggregation stays
	// deterministic regardless of worker scheduling.
	ordered := make([]uploadResult, total)
	for r := range resultCh {
		completed.Add(1)
		ordered[r.position] = r

		if progress == nil {
			continue
		}
		if r.err != nil {
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: int(completed.Load()),
				Total:     total,
				Name:      r.name,
				Error:     r.err,
			})
		} else {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				Name:      r.name,
			})
		}
	}

	var artifacts []sitegen.ArtifactResult
	var texts []string
	for _, r := range ordered {
		if r.err != nil {
			result.Errors = append(result.Errors, UploadError{Name: r.name, Err: r.err})
			continue
		}
		artifacts = append(artifacts, sitegen.ArtifactResult{
			Artifact:       r.artifact,
			Classification: r.class,
			Partial:        r.partial,
		})
		if r.artifact.MediaKind == sitegen.MediaText && r.artifact.Text != "" {
			texts = append(texts, r.artifact.Text)
		}
	}

	aggregated := g.Aggregator.Aggregate(artifacts)
	bundle := g.enrichBundle(ctx, aggregated.Bundle, texts)

	injected, err := g.Injector.Inject(template.HTML, bundle)
	if err != nil {
		return nil, err
	}

	result.HTML = injected.HTML
	result.Bundle = bundle
	result.Summary = bundle.Summarize()
	result.Sections = aggregated.Sections

	if g.Generations != nil {
		generation := &sitegen.Generation{
			CompanyName:  bundle.Company.Name,
			TemplateName: template.Name,
			Sections:     result.Summary.SectionsApplied,
			Services:     result.Summary.TotalContent.Services,
			TeamMembers:  result.Summary.TotalContent.TeamMembers,
			Images:       result.Summary.TotalContent.Images,
			Confidence:   bundle.Confidence,
		}
		if err := g.Generations.CreateGeneration(ctx, generation); err != nil {
			g.logger().Warn("recording generation failed", "error", err)
		} else {
			result.GenerationID = generation.ID
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// processUpload decodes, classifies, and locally extracts a single
// upload.
func (g *Generator) processUpload(ctx context.Context, position int, u Upload) uploadResult {
	result := uploadResult{position: position, name: u.Name}

	if ctx.Err() != nil {
		result.err = ctx.Err()
		return result
	}

	artifact, err := g.Decoder.Decode(u.Name, u.Content)
	if err != nil {
		result.err = err
		return result
	}

	result.artifact = artifact
	result.class = g.Classifier.Classify(artifact)
	if artifact.MediaKind == sitegen.MediaText {
		result.partial = sitegen.Extract(artifact.Text)
	}
	return result
}

// enrichBundle asks the external extractor to analyze the uploaded texts
// and backs its answer with the locally aggregated bundle. Any external
// failure falls back to local content alone.
func (g *Generator) enrichBundle(ctx context.Context, local *sitegen.ContentBundle, texts []string) *sitegen.ContentBundle {
	if g.External == nil || len(texts) == 0 {
		return local
	}

	external, err := g.External.ClassifyAndExtract(ctx, texts)
	if err != nil {
		g.logger().Warn("external extraction unavailable, using local extraction",
			"code", sitegen.ErrorCode(err),
			"error", sitegen.ErrorMessage(err),
		)
		return local
	}

	external.Fill(local)
	external.Finalize()
	return external
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}
