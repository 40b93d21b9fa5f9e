package mock

import "github.com/MartinCastroAlvarez/elematch"

var _ elematch.Matcher = (*Matcher)(nil)

// Matcher is a mock implementation of elematch.Matcher.
type Matcher struct {
	LearnFn   func(doc elematch.Document) error
	FindFn    func(doc elematch.Document, limit int, threshold float64) ([]elematch.Match, error)
	TrainedFn func() bool
}

func (m *Matcher) Learn(doc elematch.Document) error {
	return m.LearnFn(doc)
}

func (m *Matcher) Find(doc elematch.Document, limit int, threshold float64) ([]elematch.Match, error) {
	return m.FindFn(doc, limit, threshold)
}

func (m *Matcher) Trained() bool {
	return m.TrainedFn()
}
