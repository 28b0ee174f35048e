// Package commands implements the jobctl command tree
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/jobboard/internal/client"
)

// flag names
const (
	flagServerAddress = "server-address"
	flagAPIKey        = "api-key"
	flagOutput        = "output"
)

// environment variable names
const (
	envServerAddress = "JOBBOARD_SERVER_ADDRESS"
	envAPIKey        = "API_KEY"
)

// output formats
const (
	outputTable = "table"
	outputJSON  = "json"
)

var (
	// apiClient is the shared API client instance
	apiClient client.Client
	// serverAddress holds the target API server address. Flag parsing sets this.
	serverAddress string
	apiKey        string
	outputFormat  string
)

func initClient() error {
	opts := client.DefaultOptions()
	opts.BaseURL = serverAddress
	opts.APIKey = apiKey

	c, err := client.NewClient(opts)
	if err != nil {
		return err
	}
	apiClient = c
	return nil
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:           "jobctl",
	Short:         "jobctl - command line client for the jobboard API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// Flag > env > default
		if !cmd.Flags().Changed(flagServerAddress) {
			if env := os.Getenv(envServerAddress); env != "" {
				serverAddress = env
			}
		}
		if !cmd.Flags().Changed(flagAPIKey) {
			apiKey = os.Getenv(envAPIKey)
		}

		if serverAddress == "" {
			return fmt.Errorf("server address cannot be empty")
		}
		if outputFormat != outputTable && outputFormat != outputJSON {
			return fmt.Errorf("invalid output format %q (want %s or %s)", outputFormat, outputTable, outputJSON)
		}
		return initClient()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&serverAddress, flagServerAddress, "s", client.DefaultBaseURL, "Address of the jobboard API server (env: "+envServerAddress+")")
	RootCmd.PersistentFlags().StringVar(&apiKey, flagAPIKey, "", "API key for write operations (env: "+envAPIKey+")")
	RootCmd.PersistentFlags().StringVarP(&outputFormat, flagOutput, "o", outputTable, "Output format: table or json")

	RootCmd.AddCommand(newJobsCmd())
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
