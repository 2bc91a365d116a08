package decode

import (
	"bytes"
	"encoding/binary"

	"github.com/jilee1212/sitegen"
)

// decodeVideo reads the duration of an MP4/MOV upload from its movie
// header box. Other containers produce an artifact without a duration, so
// classification treats them as long-form and routes them to the
// portfolio section.
func decodeVideo(content []byte, name, ext string) *sitegen.VideoMeta {
	meta := &sitegen.VideoMeta{Ref: ref(name, sitegen.MediaVideo)}
	if ext == ".mp4" || ext == ".mov" {
		meta.DurationSeconds = mvhdDuration(content)
	}
	return meta
}

// mvhdDuration scans for the mvhd box and returns duration/timescale in
// seconds, or 0 when no well-formed header is present.
func mvhdDuration(content []byte) float64 {
	i := bytes.Index(content, []byte("mvhd"))
	if i < 0 {
		return 0
	}
	box := content[i:]

	var timescale, duration uint64
	switch {
	case len(box) >= 24 && box[4] == 0:
		timescale = uint64(binary.BigEndian.Uint32(box[16:20]))
		duration = uint64(binary.BigEndian.Uint32(box[20:24]))
	case len(box) >= 36 && box[4] == 1:
		timescale = uint64(binary.BigEndian.Uint32(box[24:28]))
		duration = binary.BigEndian.Uint64(box[28:36])
	default:
		return 0
	}
	if timescale == 0 {
		return 0
	}
	return float64(duration) / float64(timescale)
}
