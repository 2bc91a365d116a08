package decode

import (
	"bytes"
	"image"
	"regexp"
	"strconv"

	// Registered for image.DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/jilee1212/sitegen"
)

// svgDimRe matches width="N" or height="N" attributes on an svg root.
var svgDimRe = regexp.MustCompile(`(width|height)="(\d+)(?:px)?"`)

// decodeImage reads pixel dimensions from an image upload. Formats whose
// dimensions cannot be read still produce a usable artifact; aspect-ratio
// placement simply falls back to the gallery.
func decodeImage(content []byte, name string) *sitegen.ImageMeta {
	meta := &sitegen.ImageMeta{Ref: ref(name, sitegen.MediaImage)}

	if cfg, _, err := image.DecodeConfig(bytes.NewReader(content)); err == nil {
		meta.Width = cfg.Width
		meta.Height = cfg.Height
		return meta
	}

	if bytes.Contains(content[:min(len(content), 512)], []byte("<svg")) {
		for _, m := range svgDimRe.FindAllSubmatch(content, -1) {
			v, err := strconv.Atoi(string(m[2]))
			if err != nil {
				continue
			}
			if string(m[1]) == "width" {
				meta.Width = v
			} else {
				meta.Height = v
			}
		}
	}
	return meta
}
