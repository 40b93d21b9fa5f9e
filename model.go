package elematch

import "sort"

// Default search parameters for library callers.
const (
	DefaultLimit     = 3
	DefaultThreshold = 0.5
)

// Match associates a candidate node with its similarity to the learned
// target. Score is always in (0, 1).
type Match struct {
	Node  *Node
	Score float64
}

// Matcher learns one target element from a reference document and finds its
// best analogues in candidate documents.
type Matcher interface {
	// Learn looks up the target id in doc and stores the element as the
	// immutable target. Returns ENOTFOUND if the id is absent and
	// ECONFLICT if a target has already been learned.
	Learn(doc Document) error

	// Find scores every element of doc against the learned target,
	// keeps those with score strictly above threshold, sorts them by
	// score descending (ties keep document order) and truncates to
	// limit. Returns EUNTRAINED before Learn, EINVALID if threshold is
	// outside [0, 1] or limit is less than 1. An empty result is not an
	// error.
	Find(doc Document, limit int, threshold float64) ([]Match, error)

	// Trained reports whether a target has been learned.
	Trained() bool
}

// Ensure Model implements Matcher.
var _ Matcher = (*Model)(nil)

// Model is the single-target matching model. It is created untrained and
// transitions to trained exactly once via Learn; the learned target is
// immutable.
type Model struct {
	target  Text
	learned *Node
}

// NewModel creates an untrained model for the given target id.
// Returns EINVALID if the id is empty.
func NewModel(targetID string) (*Model, error) {
	if targetID == "" {
		return nil, Errorf(EINVALID, "target id required")
	}
	return &Model{target: NewText(targetID)}, nil
}

// TargetID returns the id the model was created with.
func (m *Model) TargetID() string {
	return m.target.Raw()
}

// Target returns the learned target node, or nil if untrained.
func (m *Model) Target() *Node {
	return m.learned
}

// Trained reports whether a target has been learned.
func (m *Model) Trained() bool {
	return m.learned != nil
}

// Learn implements Matcher.
func (m *Model) Learn(doc Document) error {
	if m.Trained() {
		return Errorf(ECONFLICT, "model already trained on target %q", m.target.Raw())
	}
	node, err := doc.ElementByID(m.target.Raw())
	if err != nil {
		return err
	}
	m.learned = node
	return nil
}

// Find implements Matcher.
func (m *Model) Find(doc Document, limit int, threshold float64) ([]Match, error) {
	if !m.Trained() {
		return nil, Errorf(EUNTRAINED, "model has not learned target %q yet", m.target.Raw())
	}
	if threshold < 0 || threshold > 1 {
		return nil, Errorf(EINVALID, "threshold %v outside [0, 1]", threshold)
	}
	if limit < 1 {
		return nil, Errorf(EINVALID, "limit %d must be at least 1", limit)
	}

	var matches []Match
	for node := range doc.Elements() {
		score := m.learned.MatchScore(node)
		if score > threshold {
			matches = append(matches, Match{Node: node, Score: score})
		}
	}

	// Stable sort so tied scores keep document-traversal order.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}
