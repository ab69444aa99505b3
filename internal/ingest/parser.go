// Package ingest extracts plain text from uploaded documents.
package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// DefaultMaxBytes caps the size of a single upload.
const DefaultMaxBytes int64 = 10 << 20

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrCorruptFile       = errors.New("file could not be parsed")
	ErrTooLarge          = errors.New("file exceeds size limit")
	ErrNoText            = errors.New("no extractable text found")
)

// Format identifies a supported input type.
type Format string

const (
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
	FormatPDF      Format = "pdf"
	FormatDOCX     Format = "docx"
)

// Formats lists the accepted file extensions.
func Formats() []Format {
	return []Format{FormatText, FormatMarkdown, FormatPDF, FormatDOCX}
}

// DetectFormat maps a file name to its Format by extension.
func DetectFormat(name string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".txt", ".text":
		return FormatText, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Document is the text extracted from one upload.
type Document struct {
	Name   string `json:"name"`
	Format Format `json:"format"`
	Size   int64  `json:"size"`
	Text   string `json:"text"`
}

// Parse extracts text from raw file contents. The format comes from name.
func Parse(name string, raw []byte) (*Document, error) {
	format, err := DetectFormat(name)
	if err != nil {
		return nil, err
	}

	var text string
	switch format {
	case FormatText, FormatMarkdown:
		text, err = parsePlain(raw)
	case FormatPDF:
		text, err = parsePDF(raw)
	case FormatDOCX:
		text, err = parseDOCX(raw)
	}
	if err != nil {
		return nil, err
	}

	text = normalizeWhitespace(text)
	if text == "" {
		return nil, ErrNoText
	}
	return &Document{
		Name:   filepath.Base(name),
		Format: format,
		Size:   int64(len(raw)),
		Text:   text,
	}, nil
}

// ParseReader reads at most maxBytes from r and parses it. A non-positive
// maxBytes uses DefaultMaxBytes.
func ParseReader(name string, r io.Reader, maxBytes int64) (*Document, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	raw, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if int64(len(raw)) > maxBytes {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrTooLarge, name, maxBytes)
	}
	return Parse(name, raw)
}

// ParseFile reads and parses the file at path.
func ParseFile(path string, maxBytes int64) (*Document, error) {
	if _, err := DetectFormat(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	return ParseReader(path, f, maxBytes)
}

func parsePlain(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: text is not valid UTF-8", ErrCorruptFile)
	}
	return string(raw), nil
}

func parseDOCX(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("%w: open docx zip: %v", ErrCorruptFile, err)
	}

	var xmlData []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("%w: open document.xml: %v", ErrCorruptFile, err)
		}
		xmlData, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("%w: read document.xml: %v", ErrCorruptFile, err)
		}
		break
	}
	if len(xmlData) == 0 {
		return "", fmt.Errorf("%w: word/document.xml not found", ErrCorruptFile)
	}

	decoder := xml.NewDecoder(bytes.NewReader(xmlData))
	var b strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: decode document.xml: %v", ErrCorruptFile, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteString(" ")
			case "br":
				b.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				// blank line so paragraphs survive segmentation
				b.WriteString("\n\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

func parsePDF(raw []byte) (text string, err error) {
	// the pdf reader panics on some malformed streams
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: pdf: %v", ErrCorruptFile, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("%w: open pdf: %v", ErrCorruptFile, err)
	}

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n\n")
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("%w in pdf", ErrNoText)
	}
	return b.String(), nil
}

// normalizeWhitespace collapses runs of blank space inside lines and keeps
// at most one empty line between paragraphs.
func normalizeWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if len(out) > 0 && !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
