package decode

import (
	"archive/zip"
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jilee1212/sitegen"
	"github.com/ledongthuc/pdf"
	"github.com/markusmobius/go-trafilatura"
	"github.com/xuri/excelize/v2"
)

// extractText extracts plain text from a supported document format.
func extractText(content []byte, ext string) (string, error) {
	switch ext {
	case ".pdf":
		return extractPDF(content)
	case ".docx":
		return extractDOCX(content)
	case ".doc":
		// Some .doc uploads are modern zip-based documents saved under
		// the old extension; the rest are legacy binary files we can
		// only read as raw text.
		if text, err := extractDOCX(content); err == nil {
			return text, nil
		}
		return extractPlain(content)
	case ".xlsx":
		return extractXLSX(content)
	case ".html", ".htm":
		return extractHTML(content)
	default:
		return extractPlain(content)
	}
}

// extractPlain returns content as a string, replacing invalid UTF-8
// sequences with the replacement character.
func extractPlain(content []byte) (string, error) {
	if !utf8.Valid(content) {
		return strings.ToValidUTF8(string(content), "�"), nil
	}
	return string(content), nil
}

func extractPDF(content []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", sitegen.Errorf(sitegen.EINTERNAL, "open pdf: %v", err)
	}
	var buf strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", sitegen.Errorf(sitegen.EINTERNAL, "extract pdf page %d: %v", i, err)
		}
		buf.WriteString(text)
		buf.WriteByte('\n')
	}
	return strings.TrimSpace(buf.String()), nil
}

// wtTag matches <w:t>text</w:t> nodes regardless of run attributes.
var wtTag = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)

// extractDOCX extracts the text nodes of word/document.xml. DOCX is a zip
// archive; pulling the <w:t> nodes directly keeps content readable without
// caring about paragraph or run attributes.
func extractDOCX(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", sitegen.Errorf(sitegen.EINTERNAL, "open docx: not a zip: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", sitegen.Errorf(sitegen.EINTERNAL, "open docx body: %v", err)
		}
		var buf bytes.Buffer
		_, err = buf.ReadFrom(rc)
		rc.Close()
		if err != nil {
			return "", sitegen.Errorf(sitegen.EINTERNAL, "read docx body: %v", err)
		}
		var b strings.Builder
		for i, m := range wtTag.FindAllSubmatch(buf.Bytes(), -1) {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.Write(bytes.TrimSpace(m[1]))
		}
		return strings.TrimSpace(b.String()), nil
	}
	return "", sitegen.Errorf(sitegen.EINTERNAL, "docx has no document body")
}

func extractXLSX(content []byte) (string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return "", sitegen.Errorf(sitegen.EINTERNAL, "open xlsx: %v", err)
	}
	defer f.Close()

	var buf strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", sitegen.Errorf(sitegen.EINTERNAL, "read xlsx sheet %q: %v", sheet, err)
		}
		for _, row := range rows {
			buf.WriteString(strings.Join(row, "\t"))
			buf.WriteByte('\n')
		}
	}
	return strings.TrimSpace(buf.String()), nil
}

// extractHTML pulls the main content out of an HTML upload so navigation
// and boilerplate do not pollute keyword scoring.
func extractHTML(content []byte) (string, error) {
	result, err := trafilatura.Extract(bytes.NewReader(content), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil {
		return "", sitegen.Errorf(sitegen.EINTERNAL, "extract html: %v", err)
	}
	return strings.TrimSpace(result.ContentText), nil
}
