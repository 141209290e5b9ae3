package content_test

import (
	"strings"
	"testing"

	"newelem/internal/content"
	"newelem/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `<NewElements>
  <Locale name="en">
    <Title>New elements</Title>
    <Type>
      <Source>/templates/article.html</Source>
      <Destination>
        <Folder>/site/articles/</Folder>
        <Pattern>/site/articles/article_%(number).html</Pattern>
      </Destination>
    </Type>
    <Type>
      <Source>/templates/note.txt</Source>
      <Destination>
        <Folder>/site/notes/</Folder>
        <Pattern>/site/notes/note_%(number).txt</Pattern>
      </Destination>
    </Type>
  </Locale>
  <Locale name="de">
    <Title>Neue Elemente</Title>
  </Locale>
</NewElements>`

func parse(t *testing.T, raw string) *content.Document {
	t.Helper()
	doc, err := content.Parse(strings.NewReader(raw))
	require.NoError(t, err)
	return doc
}

func TestParseLocales(t *testing.T) {
	doc := parse(t, sampleDocument)

	assert.Equal(t, "NewElements", doc.Root())
	assert.True(t, doc.HasLocale("en"))
	assert.True(t, doc.HasLocale("de"))
	assert.False(t, doc.HasLocale("fr"))
	assert.Equal(t, []string{"en", "de"}, doc.Locales(), "declaration order")
}

func TestValueLookup(t *testing.T) {
	doc := parse(t, sampleDocument)

	title, ok := doc.Value("Title", "en")
	require.True(t, ok)
	assert.Equal(t, "New elements", title)

	title, ok = doc.Value("Title", "de")
	require.True(t, ok)
	assert.Equal(t, "Neue Elemente", title)

	_, ok = doc.Value("Title", "fr")
	assert.False(t, ok, "missing locale")

	_, ok = doc.Value("Missing", "en")
	assert.False(t, ok, "missing path")
}

func TestNestedPathLookup(t *testing.T) {
	doc := parse(t, sampleDocument)

	entries := doc.Values("Type", "en")
	require.Len(t, entries, 2)

	folder, ok := entries[0].Value("Destination/Folder")
	require.True(t, ok)
	assert.Equal(t, "/site/articles/", folder)

	pattern, ok := entries[1].Value("Destination/Pattern")
	require.True(t, ok)
	assert.Equal(t, "/site/notes/note_%(number).txt", pattern)

	_, ok = entries[0].Value("Destination/Missing")
	assert.False(t, ok)
}

func TestValuesDocumentOrder(t *testing.T) {
	doc := parse(t, sampleDocument)

	entries := doc.Values("Type", "en")
	require.Len(t, entries, 2)
	first, _ := entries[0].Value("Source")
	second, _ := entries[1].Value("Source")
	assert.Equal(t, "/templates/article.html", first)
	assert.Equal(t, "/templates/note.txt", second)

	assert.Empty(t, doc.Values("Type", "de"))
	assert.Empty(t, doc.Values("Type", "fr"))
}

func TestParseErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := content.Parse(strings.NewReader(""))
		assert.Error(t, err)
	})

	t.Run("malformed xml", func(t *testing.T) {
		_, err := content.Parse(strings.NewReader("<NewElements><Locale"))
		assert.Error(t, err)
	})

	t.Run("locale without name", func(t *testing.T) {
		doc := parse(t, "<NewElements><Locale/></NewElements>")
		assert.Empty(t, doc.Locales())
	})

	t.Run("duplicate locale keeps first", func(t *testing.T) {
		doc := parse(t, `<NewElements>
  <Locale name="en"><Title>first</Title></Locale>
  <Locale name="en"><Title>second</Title></Locale>
</NewElements>`)
		assert.Equal(t, []string{"en"}, doc.Locales())
		title, ok := doc.Value("Title", "en")
		require.True(t, ok)
		assert.Equal(t, "first", title)
	})
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := testutils.WriteFile(t, dir, "new-elements.xml", sampleDocument)

	doc, err := content.ParseFile(path)
	require.NoError(t, err)
	assert.True(t, doc.HasLocale("en"))

	_, err = content.ParseFile(path + ".missing")
	assert.Error(t, err)
}
