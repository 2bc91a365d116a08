package sitegen

// InjectResult holds the outcome of injecting a bundle into a template.
type InjectResult struct {
	// HTML is the substituted document. On failure it is the original
	// template unchanged.
	HTML string `json:"html"`

	// AppliedSections lists the sections that received content.
	AppliedSections []string `json:"appliedSections"`

	// Applied is false when the template was unusable and returned as-is.
	Applied bool `json:"applied"`
}

// Injector substitutes a content bundle into an HTML template: every
// {{TOKEN}} placeholder is replaced (unresolved tokens get a visible
// placeholder default, never left raw), data-repeat regions expand to one
// fragment per list item (or are removed when the list is empty), and
// logo/banner image sources are swapped in.
//
// Injection is a pure transformation over text: running Inject on its own
// output with the same bundle returns identical HTML.
type Injector interface {
	Inject(template string, bundle *ContentBundle) (*InjectResult, error)
}
