// Package fs provides file-based template loading and output-site writing.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"github.com/jilee1212/sitegen"
)

// Site is the complete output of one generation run.
type Site struct {
	HTML    string
	Summary *sitegen.Summary

	// BaseURL is used for sitemap entries. Empty means the sitemap is
	// written with root-relative locations.
	BaseURL string
}

// Writer writes generated sites with atomic update semantics. Files are
// written to a temporary directory and moved into place on success, so a
// failed run never leaves a half-written site behind.
type Writer struct {
	baseDir string
	name    string
}

// NewWriter creates a Writer. baseDir is the parent directory, name is
// the output directory name. Files are written to baseDir/name.tmp and
// moved to baseDir/name on success.
func NewWriter(baseDir, name string) *Writer {
	return &Writer{baseDir: baseDir, name: name}
}

func (w *Writer) tempDir() string {
	return filepath.Join(w.baseDir, w.name+".tmp")
}

// Dir returns the final output directory.
func (w *Writer) Dir() string {
	return filepath.Join(w.baseDir, w.name)
}

// WriteSite writes index.html, sitemap.xml, and summary.json, then moves
// the temporary directory into place, replacing any previous output.
func (w *Writer) WriteSite(ctx context.Context, site *Site) error {
	if site == nil || site.HTML == "" {
		return sitegen.Errorf(sitegen.EINVALID, "site has no content")
	}

	if err := os.MkdirAll(w.tempDir(), 0755); err != nil {
		return err
	}
	abort := func(err error) error {
		os.RemoveAll(w.tempDir())
		return err
	}

	if err := os.WriteFile(filepath.Join(w.tempDir(), "index.html"), []byte(site.HTML), 0644); err != nil {
		return abort(err)
	}

	sitemap, err := formatSitemap(site)
	if err != nil {
		return abort(err)
	}
	if err := os.WriteFile(filepath.Join(w.tempDir(), "sitemap.xml"), sitemap, 0644); err != nil {
		return abort(err)
	}

	if site.Summary != nil {
		summary, err := json.MarshalIndent(site.Summary, "", "  ")
		if err != nil {
			return abort(err)
		}
		if err := os.WriteFile(filepath.Join(w.tempDir(), "summary.json"), summary, 0644); err != nil {
			return abort(err)
		}
	}

	if err := os.RemoveAll(w.Dir()); err != nil {
		return abort(err)
	}
	return os.Rename(w.tempDir(), w.Dir())
}

// formatSitemap renders a sitemap with the landing page plus one entry
// per applied section anchor.
func formatSitemap(site *Site) ([]byte, error) {
	base := site.BaseURL
	if base == "" {
		base = "/"
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", "http://www.sitemaps.org/schemas/sitemap/0.9")

	addURL := func(loc string) {
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(loc)
	}

	addURL(base)
	if site.Summary != nil {
		for _, section := range site.Summary.SectionsApplied {
			addURL(base + "#" + section)
		}
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}
