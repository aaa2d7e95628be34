package columns

import (
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapColumns(t *testing.T) {
	t.Parallel()

	f, err := LoadFile(filepath.Join("testdata", "orders.yaml"))
	require.NoError(t, err)

	results, diags := MapColumns(f)

	got := map[string]string{}
	for _, r := range results {
		got[r.Column.Name] = r.Schema.String()
	}

	assert.Equal(t, map[string]string{
		"id":       `"long"`,
		"customer": `"string"`,
		"tags":     `{"type":"array","items":"string"}`,
		"scores":   `{"type":"array","items":{"type":"array","items":"double"}}`,
	}, got, spew.Sdump(results))

	require.Len(t, results, 4)
	assert.Equal(t, "id", results[0].Column.Name)
	assert.Equal(t, "scores", results[3].Column.Name)
	assert.Equal(t, "DOUBLE ARRAY ARRAY", results[3].Type.String())

	require.Len(t, diags.Errors, 3, spew.Sdump(diags))

	price := diags.Errors[0]
	assert.Equal(t, "price", price.Column)
	assert.Equal(t, CodeUnsupported, price.Code)
	assert.Equal(t, "DECIMAL is not supported.", price.Message)
	assert.Contains(t, price.Suggestions, "BIGINT")
	assert.Len(t, price.Suggestions, 11)

	attrs := diags.Errors[1]
	assert.Equal(t, "attrs", attrs.Column)
	assert.Equal(t, CodeUnsupported, attrs.Code)
	assert.Equal(t, "Unsupported RelDataType: (VARCHAR, VARCHAR) MAP", attrs.Message)
	assert.Empty(t, attrs.Suggestions)

	note := diags.Errors[2]
	assert.Equal(t, "note", note.Column)
	assert.Equal(t, CodeParse, note.Code)
	assert.Contains(t, note.Message, "TEXT")

	require.Len(t, diags.Infos, 4)
	assert.Equal(t, "id", diags.Infos[0].Column)
	assert.Equal(t, CodeMapped, diags.Infos[0].Code)
	assert.Equal(t, `BIGINT -> "long"`, diags.Infos[0].Message)
	assert.Equal(t, `DOUBLE ARRAY ARRAY -> {"type":"array","items":{"type":"array","items":"double"}}`, diags.Infos[3].Message)

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "customer", diags.Warnings[0].Column)
	assert.Equal(t, CodePrecision, diags.Warnings[0].Code)
}

func TestMapColumnsAllGood(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte("columns:\n  - {name: flag, type: BOOLEAN}\n  - {name: blob, type: ANY ARRAY}\n"))
	require.NoError(t, err)

	results, diags := MapColumns(f)
	assert.False(t, diags.HasErrors())
	assert.Empty(t, diags.Warnings)
	assert.Len(t, diags.Infos, 2)
	require.Len(t, results, 2)
	assert.Equal(t, `"boolean"`, results[0].Schema.String())
	assert.Equal(t, `{"type":"array","items":"bytes"}`, results[1].Schema.String())
}
