// Package decode turns uploaded files into artifacts: it maps filename
// extensions to media kinds, enforces per-kind size limits, extracts text
// from document formats, and reads image dimensions and video durations.
package decode

import (
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/jilee1212/sitegen"
)

// kindByExt maps lowercase filename extensions to media kinds.
var kindByExt = map[string]sitegen.MediaKind{
	".txt":  sitegen.MediaText,
	".md":   sitegen.MediaText,
	".pdf":  sitegen.MediaText,
	".doc":  sitegen.MediaText,
	".docx": sitegen.MediaText,
	".xlsx": sitegen.MediaText,
	".html": sitegen.MediaText,
	".htm":  sitegen.MediaText,

	".jpg":  sitegen.MediaImage,
	".jpeg": sitegen.MediaImage,
	".png":  sitegen.MediaImage,
	".gif":  sitegen.MediaImage,
	".webp": sitegen.MediaImage,
	".svg":  sitegen.MediaImage,

	".mp4":  sitegen.MediaVideo,
	".webm": sitegen.MediaVideo,
	".ogg":  sitegen.MediaVideo,
	".avi":  sitegen.MediaVideo,
	".mov":  sitegen.MediaVideo,
}

// Kind returns the media kind for a filename, or MediaUnknown when the
// extension is not supported.
func Kind(name string) sitegen.MediaKind {
	ext := strings.ToLower(filepath.Ext(name))
	if kind, ok := kindByExt[ext]; ok {
		return kind
	}
	return sitegen.MediaUnknown
}

// Hash returns a content fingerprint used for duplicate-upload detection.
func Hash(content []byte) uint64 {
	return xxhash.Sum64(content)
}

// Decoder builds artifacts from uploaded file contents.
type Decoder struct{}

// NewDecoder returns a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode validates and decodes one uploaded file. Returns EINVALID for
// unsupported extensions and oversized files, EINTERNAL when a supported
// format cannot be parsed.
func (d *Decoder) Decode(name string, content []byte) (*sitegen.Artifact, error) {
	kind := Kind(name)
	if kind == sitegen.MediaUnknown {
		return nil, sitegen.Errorf(sitegen.EINVALID, "unsupported file type %q", filepath.Ext(name))
	}
	if int64(len(content)) > sitegen.MaxSizeBytes(kind) {
		return nil, sitegen.Errorf(sitegen.EINVALID, "%s exceeds the %dMB limit for %s files",
			name, sitegen.MaxSizeBytes(kind)>>20, kind)
	}

	artifact := &sitegen.Artifact{
		ID:        uuid.New().String(),
		Name:      name,
		SizeBytes: int64(len(content)),
		MediaKind: kind,
	}

	ext := strings.ToLower(filepath.Ext(name))
	switch kind {
	case sitegen.MediaText:
		text, err := extractText(content, ext)
		if err != nil {
			return nil, err
		}
		artifact.Text = text
	case sitegen.MediaImage:
		artifact.Image = decodeImage(content, name)
	case sitegen.MediaVideo:
		artifact.Video = decodeVideo(content, name, ext)
	}

	if err := artifact.Validate(); err != nil {
		return nil, err
	}
	return artifact, nil
}

// ref is the path an artifact is served under in the generated site.
func ref(name string, kind sitegen.MediaKind) string {
	if kind == sitegen.MediaVideo {
		return "videos/" + filepath.Base(name)
	}
	return "images/" + filepath.Base(name)
}
