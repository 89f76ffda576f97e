package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"personalab/internal/core/export"
	"personalab/internal/core/persona"
	"personalab/internal/core/persona/personatest"
	"personalab/internal/platform/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	out, err string
	runErr   error
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errb bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errb)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return result{out: out.String(), err: errb.String(), runErr: err}
}

func writeJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	p := filepath.Join(t.TempDir(), "persona.json")
	require.NoError(t, os.WriteFile(p, b, 0o644))
	return p
}

func TestSlug(t *testing.T) {
	t.Parallel()
	r := run(t, "", "slug", "Ana", "Sousa,", "Gerente")
	require.NoError(t, r.runErr)
	assert.Equal(t, export.Slug("Ana Sousa, Gerente")+"\n", r.out)
}

func TestListText(t *testing.T) {
	t.Parallel()

	r := run(t, "  first \n\n second\r\n", "list-text")
	require.NoError(t, r.runErr)
	assert.JSONEq(t, `["first","second"]`, r.out)

	r = run(t, `["a","b"]`, "list-text", "--reverse")
	require.NoError(t, r.runErr)
	assert.Equal(t, "a\nb\n", r.out)

	r = run(t, `{"a":1}`, "list-text", "--reverse")
	require.Error(t, r.runErr)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("bare data ok", func(t *testing.T) {
		r := run(t, "", "validate", "--in", writeJSON(t, personatest.Data()))
		require.NoError(t, r.runErr)
		assert.Equal(t, "ok\n", r.out)
	})

	t.Run("payload checks the title", func(t *testing.T) {
		p := personatest.Payload()
		p.Title = "x"
		r := run(t, "", "validate", "--in", writeJSON(t, p))
		var ee exitError
		require.ErrorAs(t, r.runErr, &ee)
		assert.Equal(t, 1, ee.code)
		assert.Contains(t, r.err, "title\t")
	})

	t.Run("empty body lists every violation", func(t *testing.T) {
		r := run(t, "{}", "validate")
		require.Error(t, r.runErr)
		assert.Greater(t, strings.Count(r.err, "\n"), 3)
	})

	t.Run("defaults fill simplified mode", func(t *testing.T) {
		d := personatest.Minimal()
		d.Personality.Openness = 0
		d.Context.DigitalProficiency = ""
		in := writeJSON(t, d)

		without := run(t, "", "validate", "--in", in)
		require.Error(t, without.runErr)
		assert.Contains(t, without.err, "openness")

		with := run(t, "", "validate", "--defaults", "--in", in)
		require.NoError(t, with.runErr, with.err)
	})

	t.Run("not json", func(t *testing.T) {
		r := run(t, "nope", "validate")
		require.Error(t, r.runErr)
		assert.NotErrorAs(t, r.runErr, new(exitError))
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	p := personatest.Payload()
	in := writeJSON(t, p)
	out := filepath.Join(t.TempDir(), "dist")

	r := run(t, "", "render", "--in", in, "--out", out, "--format", "markdown,json")
	require.NoError(t, r.runErr, r.err)

	md, err := os.ReadFile(filepath.Join(out, export.Markdown.Filename(p.Title)))
	require.NoError(t, err)
	assert.Contains(t, string(md), p.Title)

	raw, err := os.ReadFile(filepath.Join(out, export.JSON.Filename(p.Title)))
	require.NoError(t, err)
	var rec persona.Record
	require.NoError(t, json.Unmarshal(raw, &rec))
	assert.Equal(t, p.Title, rec.Title)
	assert.False(t, rec.CreatedAt.IsZero())

	assert.Equal(t, 2, strings.Count(r.out, "\n"))
	_, err = os.Stat(filepath.Join(out, export.PDFExecutive.Filename(p.Title)))
	assert.True(t, os.IsNotExist(err), "only requested formats are written")
}

func TestRender_AllWithTitle(t *testing.T) {
	t.Parallel()

	out := t.TempDir()
	r := run(t, "", "render", "--in", writeJSON(t, personatest.Data()), "--out", out, "--title", "Field Technician")
	require.NoError(t, r.runErr, r.err)
	for _, f := range export.Formats {
		_, err := os.Stat(filepath.Join(out, f.Filename("Field Technician")))
		assert.NoError(t, err, f)
	}
}

func TestRender_Rejects(t *testing.T) {
	t.Parallel()

	r := run(t, "", "render", "--format", "docx")
	require.Error(t, r.runErr)

	r = run(t, "{}", "render", "--out", t.TempDir())
	var ee exitError
	require.ErrorAs(t, r.runErr, &ee)
}

func TestToken(t *testing.T) {
	t.Parallel()

	r := run(t, "", "token", "--secret", "s3cret", "--issuer", "lab", "--sub", "u-1", "--name", "Ana")
	require.NoError(t, r.runErr)

	id, err := auth.NewVerifier("s3cret", auth.WithIssuer("lab")).Verify(strings.TrimSpace(r.out))
	require.NoError(t, err)
	assert.Equal(t, "u-1", id.UserID)
	assert.Equal(t, "Ana", id.Name)

	r = run(t, "", "token", "--secret", "s3cret")
	require.Error(t, r.runErr)
}
