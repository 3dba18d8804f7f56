package htmldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFragmentRoundTrip(t *testing.T) {
	doc, err := Parse(`<p>Hello</p><style>.a{top:0}</style>`)
	require.NoError(t, err)

	out, err := doc.Render()
	require.NoError(t, err)
	assert.Equal(t, `<p>Hello</p><style>.a{top:0}</style>`, out)
}

func TestParseDocumentKeepsWrappers(t *testing.T) {
	doc, err := Parse("<!DOCTYPE html><html><head><title>x</title></head><body></body></html>")
	require.NoError(t, err)

	out, err := doc.Render()
	require.NoError(t, err)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<head><title>x</title></head>")
}

func TestParseKeepsExplicitWrappersOnly(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "head and body",
			in:   `<head><title>T</title></head><body><p>x</p></body>`,
			want: `<head><title>T</title></head><body><p>x</p></body>`,
		},
		{
			name: "body only",
			in:   `<body><p>x</p></body>`,
			want: `<body><p>x</p></body>`,
		},
		{
			name: "head only",
			in:   `<head><title>T</title></head><p>x</p>`,
			want: `<head><title>T</title></head><p>x</p>`,
		},
		{
			name: "doctype without html",
			in:   `<!DOCTYPE html><p>x</p>`,
			want: `<!DOCTYPE html><p>x</p>`,
		},
		{
			name: "header is not head",
			in:   `<header>x</header>`,
			want: `<header>x</header>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.in)
			require.NoError(t, err)
			out, err := doc.Render()
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestParseFragmentKeepsTableParts(t *testing.T) {
	inputs := []string{
		`<style>a</style><tr><td>x</td></tr>`,
		`<caption>c</caption><style>a</style>`,
	}
	for _, in := range inputs {
		doc, err := Parse(in)
		require.NoError(t, err)
		assert.Len(t, doc.Find("style"), 1, in)

		out, err := doc.Render()
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
}

func TestFindInDocumentOrder(t *testing.T) {
	doc, err := Parse(`<style>a</style><div><link rel="stylesheet" href="x.css"></div><style>b</style>`)
	require.NoError(t, err)

	elems := doc.Find("link", "style")
	require.Len(t, elems, 3)
	assert.Equal(t, "style", elems[0].Name())
	assert.Equal(t, "a", elems[0].Text())
	assert.Equal(t, "link", elems[1].Name())
	href, ok := elems[1].Attr("href")
	assert.True(t, ok)
	assert.Equal(t, "x.css", href)
	_, ok = elems[1].Attr("type")
	assert.False(t, ok)
	assert.Equal(t, "style", elems[2].Name())
}

func TestElementMutations(t *testing.T) {
	doc, err := Parse(`<link rel="stylesheet" href="a.css"><style>x</style><style>y</style>`)
	require.NoError(t, err)
	elems := doc.Find("link", "style")
	require.Len(t, elems, 3)

	elems[0].SetAttr("href", "style.css")
	elems[1].ReplaceWith(StyleMarkup(".z{}"))
	elems[2].Remove()

	out, err := doc.Render()
	require.NoError(t, err)
	assert.Equal(t, `<link rel="stylesheet" href="style.css"/><style>`+"\n"+`.z{}</style>`, out)
}

func TestOuterHTML(t *testing.T) {
	doc, err := Parse(`<link type="text/css" rel="stylesheet" href="missing.css">`)
	require.NoError(t, err)
	elems := doc.Find("link")
	require.Len(t, elems, 1)

	markup, err := elems[0].OuterHTML()
	require.NoError(t, err)
	assert.Equal(t, `<link type="text/css" rel="stylesheet" href="missing.css"/>`, markup)
}

func TestLinkMarkupEscapesHref(t *testing.T) {
	assert.Equal(t,
		`<link rel="stylesheet" type="text/css" href="a&amp;b.css">`,
		LinkMarkup("a&b.css"))
}
