package elematch_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MartinCastroAlvarez/elematch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func match(path string, score float64) elematch.Match {
	return elematch.Match{
		Node:  &elematch.Node{Tag: "div", Path: path},
		Score: score,
	}
}

func TestReport_Add(t *testing.T) {
	t.Parallel()

	t.Run("rejects an empty title", func(t *testing.T) {
		t.Parallel()

		report := elematch.NewReport()

		err := report.Add("", nil)

		assert.Equal(t, elematch.EINVALID, elematch.ErrorCode(err))
	})

	t.Run("rejects a duplicate title", func(t *testing.T) {
		t.Parallel()

		report := elematch.NewReport()
		require.NoError(t, report.Add("a.html", nil))

		err := report.Add("a.html", nil)

		assert.Equal(t, elematch.ECONFLICT, elematch.ErrorCode(err))
		assert.Equal(t, 1, report.Len())
	})
}

func TestReport_Write(t *testing.T) {
	t.Parallel()

	t.Run("writes nothing when empty", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		require.NoError(t, elematch.NewReport().Write(&buf))

		assert.Empty(t, buf.String())
	})

	t.Run("formats path and score", func(t *testing.T) {
		t.Parallel()

		report := elematch.NewReport()
		require.NoError(t, report.Add("a.html", []elematch.Match{match("body/div/button", 0.5)}))
		var buf bytes.Buffer

		require.NoError(t, report.Write(&buf))

		assert.Equal(t, "'body/div/button' (score=0.5)\n", buf.String())
	})

	t.Run("preserves insertion and match order", func(t *testing.T) {
		t.Parallel()

		report := elematch.NewReport()
		require.NoError(t, report.Add("a.html", []elematch.Match{
			match("a/one", 0.9),
			match("a/two", 0.7),
		}))
		require.NoError(t, report.Add("b.html", []elematch.Match{
			match("b/one", 0.95),
		}))
		var buf bytes.Buffer

		require.NoError(t, report.Write(&buf))

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "a/one")
		assert.Contains(t, lines[1], "a/two")
		assert.Contains(t, lines[2], "b/one")
	})
}
