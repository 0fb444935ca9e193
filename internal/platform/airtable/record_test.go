package airtable

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields_StringAccessors(t *testing.T) {
	f := Fields{
		"Name":   "CMR Worksheet",
		"Empty":  "",
		"Number": 3.0,
	}

	v, ok := f.Str("Name")
	assert.True(t, ok)
	assert.Equal(t, "CMR Worksheet", v)

	_, ok = f.Str("Number")
	assert.False(t, ok, "non-string value must not satisfy Str")

	_, ok = f.Str("Missing")
	assert.False(t, ok)

	assert.Equal(t, "CMR Worksheet", f.FirstStr("Missing", "Empty", "Name"))
	assert.Equal(t, "", f.FirstStr("Missing", "Empty"))
	assert.Equal(t, "Resource", f.StrOr("Resource", "Missing", "Empty"))
}

func TestFields_NumericAccessors(t *testing.T) {
	f := Fields{
		"Downloads": 42.0,
		"Label":     "not a number",
	}

	assert.Equal(t, 42, f.IntOr(0, "Downloads"))
	assert.Equal(t, 7, f.IntOr(7, "Missing"))
	assert.Equal(t, 7, f.IntOr(7, "Label"), "wrong type falls through to default")
	assert.Equal(t, 42, f.IntOr(0, "Missing", "Downloads"), "fallback chain reaches later keys")
}

func TestFields_Strs(t *testing.T) {
	f := Fields{
		"Tags":     []any{"diabetes", "cgm", 12.0},
		"Scalar":   "single",
		"EmptyStr": "",
	}

	assert.Equal(t, []string{"diabetes", "cgm"}, f.Strs("Tags"), "non-strings inside the list are skipped")
	assert.Equal(t, []string{"single"}, f.Strs("Scalar"))
	assert.Nil(t, f.Strs("EmptyStr"))
	assert.Nil(t, f.Strs("Missing"))
}

func TestFields_Attachments(t *testing.T) {
	// Decode through JSON so value shapes match what the client produces.
	raw := `{
		"id": "recA1",
		"createdTime": "2026-06-01T10:00:00.000Z",
		"fields": {
			"File": [
				{"id": "attX", "url": "https://dl.airtable.com/x.pdf", "filename": "x.pdf", "size": 2621440, "type": "application/pdf"},
				{"id": "attY", "url": "https://dl.airtable.com/y.pdf", "filename": "y.pdf", "size": 1024}
			]
		}
	}`
	var rec Record
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	atts := rec.Fields.Attachments("File")
	require.Len(t, atts, 2)
	assert.Equal(t, "https://dl.airtable.com/x.pdf", atts[0].URL)
	assert.Equal(t, int64(2621440), atts[0].Size)

	first, ok := rec.Fields.FirstAttachment("Document", "File")
	require.True(t, ok)
	assert.Equal(t, "attX", first.ID)

	_, ok = rec.Fields.FirstAttachment("Document")
	assert.False(t, ok)
}

func TestAttachment_SizeMB(t *testing.T) {
	tests := []struct {
		name string
		size int64
		want float64
	}{
		{name: "exact megabytes", size: 2 * 1048576, want: 2.0},
		{name: "rounded to two decimals", size: 2621440, want: 2.5},
		{name: "small file rounds", size: 350000, want: 0.33},
		{name: "zero size", size: 0, want: 0},
		{name: "negative treated as absent", size: -5, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Attachment{Size: tt.size}.SizeMB())
		})
	}
}

func TestFields_Bool(t *testing.T) {
	f := Fields{"Featured": true, "Name": "x"}
	assert.True(t, f.Bool("Featured"))
	assert.False(t, f.Bool("Missing"))
	assert.False(t, f.Bool("Name"))
}
