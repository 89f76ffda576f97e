package export

import (
	"regexp"
	"strings"
	"unicode"

	perr "personalab/internal/platform/errors"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Format names an export artifact kind
type Format string

// Formats, in the order All returns them
const (
	PDFExecutive Format = "pdf-executive"
	PDFDetailed  Format = "pdf-detailed"
	Markdown     Format = "markdown"
	JSON         Format = "json"
)

// Formats lists every format in canonical order
var Formats = []Format{PDFExecutive, PDFDetailed, Markdown, JSON}

type formatInfo struct {
	suffix      string
	ext         string
	contentType string
}

var formatTable = map[Format]formatInfo{
	PDFExecutive: {"-executivo", ".pdf", "application/pdf"},
	PDFDetailed:  {"-detalhado", ".pdf", "application/pdf"},
	Markdown:     {"", ".md", "text/markdown; charset=utf-8"},
	JSON:         {"", ".json", "application/json"},
}

// ParseFormat accepts a format name, case-insensitive
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := formatTable[f]; !ok {
		return "", perr.InvalidArgf("unknown export format %q", s)
	}
	return f, nil
}

// Valid reports a known format
func (f Format) Valid() bool {
	_, ok := formatTable[f]
	return ok
}

// ContentType is the MIME type of the artifact
func (f Format) ContentType() string { return formatTable[f].contentType }

// Filename is the download name for a persona titled title
func (f Format) Filename(title string) string {
	info := formatTable[f]
	return Slug(title) + info.suffix + info.ext
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a title into a filename stem: accents removed, lower case,
// runs of anything else collapsed to one hyphen. Falls back to "persona"
func Slug(title string) string {
	// transformers keep state, build one per call
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	s, _, err := transform.String(strip, title)
	if err != nil {
		s = title
	}
	s = nonAlnum.ReplaceAllString(strings.ToLower(s), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "persona"
	}
	return s
}
