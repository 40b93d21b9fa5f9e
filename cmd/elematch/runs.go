package main

import (
	"fmt"

	"github.com/MartinCastroAlvarez/elematch"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := elematch.RunFilter{Limit: c.Limit}
	if c.Target != "" {
		filter.TargetID = &c.Target
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", elematch.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved runs.")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  target=%s  reference=%s\n",
			run.ID,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.TargetID,
			run.ReferencePath)
	}

	return nil
}
