package client

import (
	"fmt"

	"github.com/jmehdipour/jobs-api/internal/access"
	apiclient "github.com/jmehdipour/jobs-api/internal/client"
	"github.com/jmehdipour/jobs-api/internal/config"
	"github.com/spf13/cobra"
)

var (
	baseURL string
	apiKey  string
)

// NewClientCmd returns the parent "client" command.
func NewClientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Call a running jobs API",
	}
	cmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL (default from config)")
	cmd.PersistentFlags().StringVar(&apiKey, "key", access.DefaultAPIKey, "value sent in the X-API-Key header")

	// attach subcommands
	cmd.AddCommand(probeCmd)
	cmd.AddCommand(addCmd)
	cmd.AddCommand(getCmd)

	return cmd
}

func newAPIClient(cmd *cobra.Command) (*apiclient.Client, error) {
	cfgPath, _ := cmd.Root().PersistentFlags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	url := cfg.Client.BaseURL
	if baseURL != "" {
		url = baseURL
	}

	return apiclient.New(url, cfg.Client.Timeout), nil
}
