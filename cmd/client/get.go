package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

var jobID int64

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Fetch a job by id",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAPIClient(cmd)
		if err != nil {
			return err
		}

		job, err := c.GetJob(cmd.Context(), apiKey, jobID)
		if err != nil {
			return fmt.Errorf("could not fetch job %d: %w", jobID, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "job id=%d name=%q salary=%g\n", job.ID, job.Name, job.Salary)
		return nil
	},
}

func init() {
	getCmd.Flags().Int64Var(&jobID, "id", 0, "job id")
	_ = getCmd.MarkFlagRequired("id")
}
