// Package cli implements the santactl command tree.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"santa/internal/cli/api"
)

const (
	serverEnv   = "SANTA_SERVER"
	addressFile = "address.conf"
	defaultURL  = "http://localhost:8080"
)

var (
	flagJSON   bool
	flagServer string

	apiClient *api.Client
)

var rootCmd = &cobra.Command{
	Use:   "santactl",
	Short: "santactl — manage secret santa exchanges from the terminal",
	Long: `santactl talks to a running exchange server to manage users,
groups, and secret santa pairings.

Get started:
  santactl users create Alice       Register a participant
  santactl groups create 0          Create a group admined by user 0
  santactl groups join 1 0          User 1 joins group 0
  santactl santa run 0 0            Admin 0 closes group 0 and draws names
  santactl santa show 1 0           Show who user 1 is gifting`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		apiClient = api.NewClient(resolveServer())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "Server URL (default: $SANTA_SERVER, address.conf, or "+defaultURL+")")
}

// resolveServer picks the server URL: the --server flag wins, then the
// environment, then the first line of address.conf in the working
// directory, then the localhost default.
func resolveServer() string {
	if flagServer != "" {
		return flagServer
	}
	if env := os.Getenv(serverEnv); env != "" {
		return env
	}
	if data, err := os.ReadFile(addressFile); err == nil {
		line, _, _ := strings.Cut(string(data), "\n")
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return defaultURL
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// parseID parses a numeric id argument.
func parseID(arg, what string) (uint32, error) {
	v, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}
	return uint32(v), nil
}
