package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	jobName   string
	jobSalary float64
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new job",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(jobName) == "" {
			return errors.New("--name is required")
		}

		c, err := newAPIClient(cmd)
		if err != nil {
			return err
		}

		job, err := c.CreateJob(cmd.Context(), apiKey, jobName, jobSalary)
		if err != nil {
			return fmt.Errorf("could not create job: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created job id=%d name=%q salary=%g\n", job.ID, job.Name, job.Salary)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&jobName, "name", "", "job name")
	addCmd.Flags().Float64Var(&jobSalary, "salary", 0, "job salary")
	_ = addCmd.MarkFlagRequired("salary")
}
