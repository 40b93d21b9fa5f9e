package etree_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MartinCastroAlvarez/elematch"
	"github.com/MartinCastroAlvarez/elematch/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `<catalog version="1">
  <book id="b1" genre="tech">
    <title lang="en">The Go Programming Language</title>
  </book>
  <book id="b2" genre="tech">
    <title lang="en">Fluent Python</title>
  </book>
</catalog>`

func parseFixture(t *testing.T) *etree.Document {
	t.Helper()
	doc, err := etree.Parse("fixture.xml", []byte(fixture))
	require.NoError(t, err)
	return doc
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("reads a document from disk", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "catalog.xml")
		require.NoError(t, os.WriteFile(path, []byte(fixture), 0644))

		doc, err := etree.Open(path)

		require.NoError(t, err)
		assert.Equal(t, path, doc.Path())
		assert.NotZero(t, doc.Checksum())
	})

	t.Run("fails with EUNAVAILABLE for a missing file", func(t *testing.T) {
		t.Parallel()

		_, err := etree.Open(filepath.Join(t.TempDir(), "missing.xml"))

		assert.Equal(t, elematch.EUNAVAILABLE, elematch.ErrorCode(err))
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("fails with EINVALID for malformed XML", func(t *testing.T) {
		t.Parallel()

		_, err := etree.Parse("bad.xml", []byte("<catalog><book></catalog>"))

		assert.Equal(t, elematch.EINVALID, elematch.ErrorCode(err))
	})

	t.Run("fails with EINVALID for an empty document", func(t *testing.T) {
		t.Parallel()

		_, err := etree.Parse("empty.xml", []byte(""))

		assert.Equal(t, elematch.EINVALID, elematch.ErrorCode(err))
	})
}

func TestDocument_ElementByID(t *testing.T) {
	t.Parallel()

	t.Run("finds an element with tag, attributes and path", func(t *testing.T) {
		t.Parallel()

		doc := parseFixture(t)

		node, err := doc.ElementByID("b2")

		require.NoError(t, err)
		assert.Equal(t, "book", node.Tag)
		assert.Equal(t, "b2", node.ID())
		assert.Equal(t, "tech", node.Attr["genre"].Raw())
		assert.Equal(t, "book[2]", node.Path)
	})

	t.Run("fails with ENOTFOUND for an unknown id", func(t *testing.T) {
		t.Parallel()

		doc := parseFixture(t)

		_, err := doc.ElementByID("b3")

		assert.Equal(t, elematch.ENOTFOUND, elematch.ErrorCode(err))
	})

	t.Run("rejects an empty id", func(t *testing.T) {
		t.Parallel()

		doc := parseFixture(t)

		_, err := doc.ElementByID("")

		assert.Equal(t, elematch.EINVALID, elematch.ErrorCode(err))
	})
}

func TestDocument_Elements(t *testing.T) {
	t.Parallel()

	t.Run("walks every element depth-first in document order", func(t *testing.T) {
		t.Parallel()

		doc := parseFixture(t)

		var paths []string
		for node := range doc.Elements() {
			paths = append(paths, node.Path)
		}

		assert.Equal(t, []string{
			".",
			"book[1]",
			"book[1]/title",
			"book[2]",
			"book[2]/title",
		}, paths)
	})

	t.Run("exposes element text", func(t *testing.T) {
		t.Parallel()

		doc := parseFixture(t)

		var titles []string
		for node := range doc.Elements() {
			if node.Tag == "title" {
				titles = append(titles, node.Text.Raw())
			}
		}

		assert.Equal(t, []string{"The Go Programming Language", "Fluent Python"}, titles)
	})

	t.Run("is replayable", func(t *testing.T) {
		t.Parallel()

		doc := parseFixture(t)

		count := func() int {
			n := 0
			for range doc.Elements() {
				n++
			}
			return n
		}

		assert.Equal(t, 5, count())
		assert.Equal(t, 5, count())
	})
}

func TestOpener(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.xml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0644))

	doc, err := etree.NewOpener().OpenDocument(path)

	require.NoError(t, err)
	assert.Equal(t, path, doc.Path())
}
