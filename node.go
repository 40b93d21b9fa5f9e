package elematch

import (
	"fmt"
	"math"
)

// Node is a read-only projection of one element of a parsed tree-structured
// document: its tag name, leading text, attributes with non-empty values,
// and the structural path locating it within the document (empty if the
// path could not be resolved).
type Node struct {
	Tag  string
	Text Text
	Attr map[string]Text
	Path string
}

// ID returns the raw value of the node's "id" attribute, or "" if absent.
func (n *Node) ID() string {
	return n.Attr["id"].Raw()
}

// String implements fmt.Stringer for log output.
func (n *Node) String() string {
	return fmt.Sprintf("<%s %q>", n.Tag, n.Text.Title())
}

// MatchScore compares two nodes and returns a similarity score strictly
// between 0 and 1.
//
// The raw score is the text similarity plus the sum of value similarities
// for every attribute name present on both nodes; attributes present on
// only one side contribute nothing. A tag mismatch halves the raw score.
// The sum is unbounded, so it is squashed through a sigmoid to keep scores
// comparable across candidates with differing attribute overlap. Note that
// the attribute sum grows with the number of shared keys, so many trivial
// shared attributes can saturate the sigmoid past a single strong text
// match.
func (n *Node) MatchScore(other *Node) float64 {
	raw := n.Text.Similarity(other.Text)
	for name, value := range n.Attr {
		if ov, ok := other.Attr[name]; ok {
			raw += value.Similarity(ov)
		}
	}
	if n.Tag != other.Tag {
		raw /= 2
	}
	score := sigmoid(raw)
	if score <= 0 || score >= 1 {
		panic(fmt.Sprintf("match score out of bounds: %v", score))
	}
	return score
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
