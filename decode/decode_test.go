package decode_test

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/jilee1212/sitegen"
	"github.com/jilee1212/sitegen/decode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want sitegen.MediaKind
	}{
		{"intro.txt", sitegen.MediaText},
		{"README.md", sitegen.MediaText},
		{"report.PDF", sitegen.MediaText},
		{"page.html", sitegen.MediaText},
		{"logo.png", sitegen.MediaImage},
		{"photo.JPG", sitegen.MediaImage},
		{"icon.svg", sitegen.MediaImage},
		{"intro.mp4", sitegen.MediaVideo},
		{"clip.webm", sitegen.MediaVideo},
		{"archive.zip", sitegen.MediaUnknown},
		{"noextension", sitegen.MediaUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, decode.Kind(tt.name))
		})
	}
}

func TestHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, decode.Hash([]byte("same")), decode.Hash([]byte("same")))
	assert.NotEqual(t, decode.Hash([]byte("same")), decode.Hash([]byte("different")))
}

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	d := decode.NewDecoder()

	t.Run("plain text", func(t *testing.T) {
		t.Parallel()

		a, err := d.Decode("intro.txt", []byte("회사 소개"))

		require.NoError(t, err)
		assert.NotEmpty(t, a.ID)
		assert.Equal(t, sitegen.MediaText, a.MediaKind)
		assert.Equal(t, "회사 소개", a.Text)
	})

	t.Run("invalid utf8 is replaced", func(t *testing.T) {
		t.Parallel()

		a, err := d.Decode("weird.txt", []byte{'h', 'i', 0xff, 0xfe})

		require.NoError(t, err)
		assert.Contains(t, a.Text, "hi")
		assert.Contains(t, a.Text, "�")
	})

	t.Run("unsupported extension is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := d.Decode("malware.exe", []byte("x"))

		assert.Equal(t, sitegen.EINVALID, sitegen.ErrorCode(err))
	})

	t.Run("oversized image is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := d.Decode("big.png", make([]byte, sitegen.MaxImageBytes+1))

		assert.Equal(t, sitegen.EINVALID, sitegen.ErrorCode(err))
	})

	t.Run("png dimensions are decoded", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 30, 10))))

		a, err := d.Decode("banner.png", buf.Bytes())

		require.NoError(t, err)
		require.NotNil(t, a.Image)
		assert.Equal(t, 30, a.Image.Width)
		assert.Equal(t, 10, a.Image.Height)
		assert.Equal(t, "images/banner.png", a.Image.Ref)
		assert.InDelta(t, 3.0, a.AspectRatio(), 0.001)
	})

	t.Run("svg dimensions come from attributes", func(t *testing.T) {
		t.Parallel()

		svg := `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100"></svg>`

		a, err := d.Decode("logo.svg", []byte(svg))

		require.NoError(t, err)
		require.NotNil(t, a.Image)
		assert.Equal(t, 200, a.Image.Width)
		assert.Equal(t, 100, a.Image.Height)
	})

	t.Run("docx text nodes are extracted", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		f, err := zw.Create("word/document.xml")
		require.NoError(t, err)
		_, err = f.Write([]byte(`<w:document><w:body><w:p w:rsidR="0"><w:r><w:t>한빛 주식회사</w:t></w:r><w:r><w:t xml:space="preserve">소개서</w:t></w:r></w:p></w:body></w:document>`))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		a, err := d.Decode("intro.docx", buf.Bytes())

		require.NoError(t, err)
		assert.Equal(t, "한빛 주식회사 소개서", a.Text)
	})

	t.Run("docx without body is internal", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		_, err := zw.Create("other.xml")
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		_, err = d.Decode("broken.docx", buf.Bytes())

		assert.Equal(t, sitegen.EINTERNAL, sitegen.ErrorCode(err))
	})

	t.Run("legacy doc decodes as plain text", func(t *testing.T) {
		t.Parallel()

		a, err := d.Decode("소개서.doc", []byte("한빛 주식회사 소개서"))

		require.NoError(t, err)
		assert.Equal(t, "한빛 주식회사 소개서", a.Text)
	})

	t.Run("xlsx rows become tab separated text", func(t *testing.T) {
		t.Parallel()

		x := excelize.NewFile()
		require.NoError(t, x.SetCellValue("Sheet1", "A1", "서비스"))
		require.NoError(t, x.SetCellValue("Sheet1", "B1", "설명"))
		var buf bytes.Buffer
		require.NoError(t, x.Write(&buf))

		a, err := d.Decode("services.xlsx", buf.Bytes())

		require.NoError(t, err)
		assert.Contains(t, a.Text, "서비스\t설명")
	})

	t.Run("html keeps the main content only", func(t *testing.T) {
		t.Parallel()

		page := `<!DOCTYPE html><html><head><title>한빛</title></head><body>
<nav><a href="/">home</a><a href="/about">about</a></nav>
<main><article>
<h1>한빛 주식회사 소개</h1>
<p>한빛 주식회사는 클라우드 인프라 구축과 운영을 전문으로 하는 기술 기업입니다. 지난 십 년간 다양한 산업 분야의 고객과 함께 안정적인 서비스를 만들어 왔습니다.</p>
<p>우리는 고객의 비즈니스 성장을 돕는 기술 파트너가 되는 것을 목표로 하며, 데이터 분석과 보안 진단 서비스를 함께 제공합니다.</p>
</article></main>
<footer>Copyright</footer>
</body></html>`

		a, err := d.Decode("about.html", []byte(page))

		require.NoError(t, err)
		assert.Contains(t, a.Text, "클라우드 인프라")
	})

	t.Run("mp4 duration comes from the movie header", func(t *testing.T) {
		t.Parallel()

		content := mvhdBox(1000, 45000)

		a, err := d.Decode("clip.mp4", content)

		require.NoError(t, err)
		require.NotNil(t, a.Video)
		assert.InDelta(t, 45.0, a.Video.DurationSeconds, 0.001)
		assert.Equal(t, "videos/clip.mp4", a.Video.Ref)
	})

	t.Run("video without movie header has zero duration", func(t *testing.T) {
		t.Parallel()

		a, err := d.Decode("clip.webm", []byte("not an mp4"))

		require.NoError(t, err)
		require.NotNil(t, a.Video)
		assert.Zero(t, a.Video.DurationSeconds)
	})

	t.Run("name with directory is flattened in the ref", func(t *testing.T) {
		t.Parallel()

		a, err := d.Decode("uploads/team.png", pngBytes(t, 10, 10))

		require.NoError(t, err)
		assert.Equal(t, "images/team.png", a.Image.Ref)
	})
}

// mvhdBox builds a minimal version-0 movie header with the given
// timescale and duration.
func mvhdBox(timescale, duration uint32) []byte {
	var b bytes.Buffer
	b.WriteString(strings.Repeat("x", 16))
	b.WriteString("mvhd")
	b.WriteByte(0)                // version
	b.Write([]byte{0, 0, 0})      // flags
	b.Write(make([]byte, 8))      // creation and modification time
	binary.Write(&b, binary.BigEndian, timescale)
	binary.Write(&b, binary.BigEndian, duration)
	return b.Bytes()
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}
