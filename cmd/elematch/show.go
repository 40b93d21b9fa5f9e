package main

import (
	"fmt"
	"strconv"

	"github.com/MartinCastroAlvarez/elematch"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", elematch.ErrorMessage(err))
		return err
	}

	matches, err := deps.Runs.FindRunMatches(deps.Ctx, run.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", elematch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Run %s: target=%s reference=%s created=%s\n",
		run.ID, run.TargetID, run.ReferencePath,
		run.CreatedAt.Format("2006-01-02 15:04:05"))

	if len(matches) == 0 {
		fmt.Fprintln(deps.Stdout, "No matches recorded.")
		return nil
	}

	for _, m := range matches {
		fmt.Fprintf(deps.Stdout, "%s: '%s' (score=%s)\n",
			m.CandidatePath, m.NodePath,
			strconv.FormatFloat(m.Score, 'g', -1, 64))
	}

	return nil
}
