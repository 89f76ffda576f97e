package pdf

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"personalab/internal/core/labels"
	"personalab/internal/core/persona/personatest"
	perr "personalab/internal/platform/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() Document {
	return Document{
		Title:      "Primary persona",
		Data:       personatest.Data(),
		AuthorName: "Ana Martins",
		CreatedAt:  time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

// plain renders without stream compression so page content can be searched
func plain(t *testing.T, doc Document, layout Layout, opts ...Option) (string, int) {
	t.Helper()
	f, err := build(doc, layout, opts...)
	require.NoError(t, err)
	f.SetCompression(false)
	var buf bytes.Buffer
	require.NoError(t, f.Output(&buf))
	return buf.String(), f.PageCount()
}

func TestParseLayout(t *testing.T) {
	t.Parallel()

	cases := map[string]Layout{
		"executive":  Executive,
		"executivo":  Executive,
		" Detailed ": Detailed,
		"DETALHADO":  Detailed,
		"detailed":   Detailed,
	}
	for in, want := range cases {
		got, err := ParseLayout(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLayout("compact")
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
}

func TestRenderProducesPDF(t *testing.T) {
	t.Parallel()

	for _, l := range []Layout{Executive, Detailed} {
		b, err := Render(fixture(), l)
		require.NoError(t, err, l)
		assert.Greater(t, len(b), 1000, l)
		assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")), l)
	}
}

func TestUnknownLayout(t *testing.T) {
	t.Parallel()

	_, err := Render(fixture(), Layout("poster"))
	assert.True(t, perr.IsCode(err, perr.ErrorCodeInvalidArgument))
}

func TestExecutiveFitsOnePage(t *testing.T) {
	t.Parallel()

	out, pages := plain(t, fixture(), Executive)
	assert.Equal(t, 1, pages)
	assert.Contains(t, out, "(Goals: Make data-driven decisions; Shorten discovery cycles) Tj")
	assert.Contains(t, out, "(Decision criteria) Tj")
	assert.NotContains(t, out, "Created by")
}

func TestDetailedPaginates(t *testing.T) {
	t.Parallel()

	doc := fixture()
	doc.Data = personatest.Long()
	_, pages := plain(t, doc, Detailed)
	assert.Greater(t, pages, 1)

	b, err := Render(doc, Detailed)
	require.NoError(t, err)
	assert.Greater(t, len(b), 1000)
}

func TestExecutivePaginatesLongText(t *testing.T) {
	t.Parallel()

	doc := fixture()
	doc.Data = personatest.Long()
	out, pages := plain(t, doc, Executive)
	assert.Greater(t, pages, 1)

	// the story is drawn last, so the final text op must close it
	end := strings.LastIndex(out, ") Tj")
	require.Positive(t, end)
	assert.True(t, strings.HasSuffix(out[:end], "meeting."), "story was cut short")

	b, err := Render(doc, Executive)
	require.NoError(t, err)
	assert.Greater(t, len(b), 1000)
}

func TestDetailedContent(t *testing.T) {
	t.Parallel()

	out, _ := plain(t, fixture(), Detailed)
	assert.Contains(t, out, "(Created by: Ana Martins) Tj")
	assert.Contains(t, out, "(Date: 2025-03-14 09:30 UTC) Tj")
	assert.Contains(t, out, "(Openness: 4/5 \\(High\\)) Tj")
	assert.Contains(t, out, "(Neuroticism: 2/5 \\(Low\\)) Tj")
	assert.Contains(t, out, "(Extroversion: 3/5 \\(Medium\\)) Tj")
	// barriers and assistiveTech are empty in the fixture, notes too
	assert.Contains(t, out, "(No items informed.) Tj")
	assert.Contains(t, out, "(Notes: No additional notes.) Tj")
}

func TestOptionalHeaderLines(t *testing.T) {
	t.Parallel()

	doc := fixture()
	doc.AuthorName = ""
	doc.CreatedAt = time.Time{}
	out, _ := plain(t, doc, Detailed)
	assert.NotContains(t, out, "Created by")
	assert.NotContains(t, out, "(Date:")
}

func TestLabelsAreInjected(t *testing.T) {
	t.Parallel()

	tbl, err := labels.Default().Merge(labels.Table{
		Sections: map[string]string{labels.Summary: "Resumo"},
		Texts:    map[string]string{labels.NoItems: "Sem itens informados."},
	})
	require.NoError(t, err)

	out, _ := plain(t, fixture(), Detailed, WithLabels(tbl))
	assert.Contains(t, out, "(Resumo) Tj")
	assert.Contains(t, out, "(Sem itens informados.) Tj")
}

func TestMinimalDocumentRenders(t *testing.T) {
	t.Parallel()

	doc := fixture()
	doc.Data = personatest.Minimal()
	for _, l := range []Layout{Executive, Detailed} {
		_, err := Render(doc, l)
		assert.NoError(t, err, l)
	}
}
