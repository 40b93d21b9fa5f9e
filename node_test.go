package elematch_test

import (
	"math"
	"testing"

	"github.com/MartinCastroAlvarez/elematch"
	"github.com/stretchr/testify/assert"
)

// element builds a node for comparator tests.
func element(tag, text string, attrs map[string]string) *elematch.Node {
	attr := make(map[string]elematch.Text, len(attrs))
	for k, v := range attrs {
		attr[k] = elematch.NewText(v)
	}
	return &elematch.Node{Tag: tag, Text: elematch.NewText(text), Attr: attr}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func TestNode_ID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ok", element("button", "", map[string]string{"id": "ok"}).ID())
	assert.Empty(t, element("button", "", nil).ID())
}

func TestNode_MatchScore(t *testing.T) {
	t.Parallel()

	t.Run("is strictly between 0 and 1", func(t *testing.T) {
		t.Parallel()

		nodes := []*elematch.Node{
			element("div", "", nil),
			element("button", "Submit", map[string]string{"class": "btn primary"}),
			element("a", "Cancel", map[string]string{"href": "/x", "class": "link"}),
		}
		for _, x := range nodes {
			for _, y := range nodes {
				score := x.MatchScore(y)
				assert.Greater(t, score, 0.0)
				assert.Less(t, score, 1.0)
			}
		}
	})

	t.Run("identical text and one shared attribute squash to sigmoid(2)", func(t *testing.T) {
		t.Parallel()

		a := element("button", "Submit", map[string]string{"class": "btn primary"})
		b := element("button", "Submit", map[string]string{"class": "btn primary"})

		assert.InDelta(t, sigmoid(2), a.MatchScore(b), 1e-12)
	})

	t.Run("both texts empty contribute a full base score", func(t *testing.T) {
		t.Parallel()

		a := element("div", "", nil)
		b := element("div", "", nil)

		assert.InDelta(t, sigmoid(1), a.MatchScore(b), 1e-12)
	})

	t.Run("unshared attributes contribute nothing", func(t *testing.T) {
		t.Parallel()

		a := element("button", "Submit", map[string]string{"id": "ok"})
		b := element("button", "Submit", map[string]string{"class": "btn", "href": "/x"})
		bare := element("button", "Submit", nil)

		assert.Equal(t, a.MatchScore(bare), a.MatchScore(b))
	})

	t.Run("tag mismatch halves the raw score", func(t *testing.T) {
		t.Parallel()

		a := element("button", "Submit", map[string]string{"class": "btn"})
		same := element("button", "Submit", map[string]string{"class": "btn"})
		other := element("a", "Submit", map[string]string{"class": "btn"})

		assert.InDelta(t, sigmoid(1), a.MatchScore(other), 1e-12)
		assert.Less(t, a.MatchScore(other), a.MatchScore(same))
	})

	t.Run("many trivial shared attributes can outscore one strong text match", func(t *testing.T) {
		t.Parallel()

		// Known scoring sensitivity: the attribute sum is unbounded
		// before the sigmoid.
		attrs := map[string]string{
			"class": "x", "role": "y", "title": "z", "lang": "en", "dir": "ltr",
		}
		manyAttrs := element("div", "", attrs).MatchScore(element("div", "", attrs))
		textOnly := element("div", "Submit", nil).MatchScore(element("div", "Submit", nil))

		assert.Greater(t, manyAttrs, textOnly)
	})

	t.Run("reference scenario separates close and distant candidates", func(t *testing.T) {
		t.Parallel()

		target := element("button", "Submit", map[string]string{"id": "x", "class": "btn primary"})
		near := element("button", "Submit", map[string]string{"class": "btn primary"})
		far := element("button", "Cancel", map[string]string{"rel": "nofollow"})

		assert.Greater(t, target.MatchScore(near), 0.8)
		assert.Less(t, target.MatchScore(far), 0.8)
	})
}
