package main

import (
	"fmt"
	"os"

	"github.com/MartinCastroAlvarez/elematch"
	"github.com/MartinCastroAlvarez/elematch/bloom"
	eslog "github.com/MartinCastroAlvarez/elematch/slog"
	"golang.org/x/sync/errgroup"
)

// defaultTargetID is the id assumed when the command line names only
// documents. Kept here, in the shell: the core always receives an explicit
// target id.
const defaultTargetID = "make-everything-ok-button"

// candidateResult holds the outcome of scoring one candidate document.
type candidateResult struct {
	checksum uint64
	matches  []elematch.Match
}

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
	targetID, paths := resolveTarget(c.Candidates)
	if len(paths) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no candidate documents given\n")
		return elematch.Errorf(elematch.EINVALID, "no candidate documents given")
	}
	paths = dedupePaths(paths)

	if c.Concurrency < 1 {
		fmt.Fprintf(deps.Stderr, "error: concurrency must be at least 1\n")
		return elematch.Errorf(elematch.EINVALID, "concurrency %d must be at least 1", c.Concurrency)
	}

	model, err := elematch.NewModel(targetID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", elematch.ErrorMessage(err))
		return err
	}
	var matcher elematch.Matcher = eslog.NewLoggingMatcher(model, deps.Logger)

	reference, err := deps.Opener.OpenDocument(c.Reference)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", elematch.ErrorMessage(err))
		return err
	}
	if err := matcher.Learn(reference); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", elematch.ErrorMessage(err))
		return err
	}

	// The learned target is immutable, so candidates can be scored in
	// parallel. Results are keyed by argument position so report order
	// never depends on scheduling.
	results := make([]candidateResult, len(paths))
	g := new(errgroup.Group)
	g.SetLimit(c.Concurrency)
	for i, path := range paths {
		g.Go(func() error {
			doc, err := deps.Opener.OpenDocument(path)
			if err != nil {
				return err
			}
			matches, err := matcher.Find(doc, c.Limit, c.Threshold)
			if err != nil {
				return err
			}
			results[i] = candidateResult{checksum: doc.Checksum(), matches: matches}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", elematch.ErrorMessage(err))
		return err
	}

	report := elematch.NewReport()
	for i, path := range paths {
		if err := report.Add(path, results[i].matches); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", elematch.ErrorMessage(err))
			return err
		}
	}

	if c.Save {
		if err := c.save(deps, targetID, paths, results); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", elematch.ErrorMessage(err))
			return err
		}
	}

	return report.Write(deps.Stdout)
}

// save records the completed run and its accepted matches.
func (c *FindCmd) save(deps *Dependencies, targetID string, paths []string, results []candidateResult) error {
	run := &elematch.Run{
		TargetID:      targetID,
		ReferencePath: c.Reference,
	}
	if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
		return err
	}
	for i, path := range paths {
		for pos, match := range results[i].matches {
			err := deps.Runs.CreateRunMatch(deps.Ctx, &elematch.RunMatch{
				RunID:         run.ID,
				CandidatePath: path,
				CandidateHash: results[i].checksum,
				NodePath:      match.Node.Path,
				Score:         match.Score,
				Position:      pos,
			})
			if err != nil {
				return err
			}
		}
	}
	fmt.Fprintf(deps.Stderr, "Saved run %s\n", run.ID)
	return nil
}

// resolveTarget decides what the last positional argument means: if it is an
// existing file it is one more candidate and the target id defaults;
// otherwise it is the target id.
func resolveTarget(args []string) (string, []string) {
	if len(args) == 0 {
		return defaultTargetID, nil
	}
	last := args[len(args)-1]
	if info, err := os.Stat(last); err == nil && !info.IsDir() {
		return defaultTargetID, args
	}
	return last, args[:len(args)-1]
}

// dedupePaths drops repeated candidate paths, keeping first occurrences, so
// a duplicated argument cannot collide in the report.
func dedupePaths(paths []string) []string {
	seen := bloom.NewFilter(uint(len(paths)), 0.001)
	out := paths[:0]
	for _, p := range paths {
		if seen.AddIfNew(p) {
			out = append(out, p)
		}
	}
	return out
}
