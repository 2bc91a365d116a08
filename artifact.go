package sitegen

// MediaKind identifies the broad category of an uploaded artifact.
type MediaKind string

// Supported media kinds.
const (
	MediaText    MediaKind = "text"
	MediaImage   MediaKind = "image"
	MediaVideo   MediaKind = "video"
	MediaUnknown MediaKind = "unknown"
)

// Per-kind upload size limits in bytes.
const (
	MaxTextBytes  = 10 << 20 // 10MB
	MaxImageBytes = 5 << 20  // 5MB
	MaxVideoBytes = 50 << 20 // 50MB
)

// MaxSizeBytes returns the upload size limit for a media kind.
// Unknown kinds get the most restrictive limit.
func MaxSizeBytes(kind MediaKind) int64 {
	switch kind {
	case MediaText:
		return MaxTextBytes
	case MediaImage:
		return MaxImageBytes
	case MediaVideo:
		return MaxVideoBytes
	}
	return MaxImageBytes
}

// ImageMeta holds pixel metadata decoded from an image upload.
type ImageMeta struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Ref    string `json:"ref"` // data URL or served path used in src attributes
}

// AspectRatio returns width/height, or 0 for degenerate dimensions.
func (m *ImageMeta) AspectRatio() float64 {
	if m == nil || m.Height <= 0 {
		return 0
	}
	return float64(m.Width) / float64(m.Height)
}

// VideoMeta holds metadata decoded from a video upload.
type VideoMeta struct {
	DurationSeconds float64 `json:"durationSeconds"`
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	Ref             string  `json:"ref"`
}

// Artifact represents one uploaded file plus its decoded content.
// Artifacts are immutable once created: the decoder builds them and no
// later pipeline stage mutates them.
type Artifact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SizeBytes int64     `json:"sizeBytes"`
	MediaKind MediaKind `json:"mediaKind"`

	// Text is the decoded text content. Set only for MediaText.
	Text string `json:"text,omitempty"`

	// Image is set only for MediaImage.
	Image *ImageMeta `json:"image,omitempty"`

	// Video is set only for MediaVideo.
	Video *VideoMeta `json:"video,omitempty"`
}

// Validate returns an error if the artifact contains invalid fields.
func (a *Artifact) Validate() error {
	if a.Name == "" {
		return Errorf(EINVALID, "artifact name required")
	}
	switch a.MediaKind {
	case MediaText, MediaImage, MediaVideo, MediaUnknown:
	default:
		return Errorf(EINVALID, "unknown media kind %q", a.MediaKind)
	}
	return nil
}

// AspectRatio returns the image aspect ratio, or 0 when the artifact is
// not an image or has no dimensions.
func (a *Artifact) AspectRatio() float64 {
	if a.Image == nil {
		return 0
	}
	return a.Image.AspectRatio()
}
