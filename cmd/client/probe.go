package client

import (
	"github.com/spf13/cobra"
)

var (
	invalidKey       string
	throttleAttempts int
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check auth (401) and throttling (429) against a running server",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAPIClient(cmd)
		if err != nil {
			return err
		}

		_, err = c.Probe(cmd.Context(), cmd.OutOrStdout(), apiKey, invalidKey, throttleAttempts)
		return err
	},
}

func init() {
	probeCmd.Flags().StringVar(&invalidKey, "invalid-key", "wrong_key", "key used for the invalid-key check")
	probeCmd.Flags().IntVar(&throttleAttempts, "attempts", 7, "max list calls while waiting for 429")
}
