package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/network"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <host>...",
	Short: "Show the identities the guard matches for each host",
	Long: `Resolve each host the way the guard does when classifying a connection
attempt: the name itself plus every IPv4 and IPv6 address it resolves to.
A host that fails to resolve is shown with its name only.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

type resolveResult struct {
	Host       string   `json:"host"`
	Identities []string `json:"identities"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	r := app.Default.Resolver

	for _, host := range args {
		ids := network.ResolveHostIdentities(cmd.Context(), r, host).Sorted()

		if jsonOutput {
			if err := writeJSON(cmd, resolveResult{Host: host, Identities: ids}); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", host, strings.Join(ids, " "))
	}
	return nil
}
