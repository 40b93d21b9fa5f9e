package elematch

import (
	"fmt"
	"io"
	"strconv"
)

// Report collects named batches of matches for presentation. Titles are
// unique and insertion order is preserved; match order within a batch is
// never changed.
type Report struct {
	titles  []string
	results map[string][]Match
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{results: make(map[string][]Match)}
}

// Add stores a batch of matches under a title. Returns EINVALID if the
// title is empty and ECONFLICT if it was already added.
func (r *Report) Add(title string, matches []Match) error {
	if title == "" {
		return Errorf(EINVALID, "report title required")
	}
	if _, ok := r.results[title]; ok {
		return Errorf(ECONFLICT, "report already has entry %q", title)
	}
	r.titles = append(r.titles, title)
	r.results[title] = matches
	return nil
}

// Len returns the number of entries in the report.
func (r *Report) Len() int {
	return len(r.titles)
}

// Write emits one line per match, batches in insertion order, matches in
// batch order: '<structural-path>' (score=<float>). Writes nothing when the
// report is empty.
func (r *Report) Write(w io.Writer) error {
	for _, title := range r.titles {
		for _, match := range r.results[title] {
			line := fmt.Sprintf("'%s' (score=%s)\n",
				match.Node.Path,
				strconv.FormatFloat(match.Score, 'g', -1, 64))
			if _, err := io.WriteString(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
