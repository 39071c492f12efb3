package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/netguard/internal/network"
)

var hostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "List the allow-listed remote hosts",
	Long: `List the code-hosting and data-hosting domains that remote data modes
make reachable. localhost and 127.0.0.1 are always reachable while the guard
is enabled.

With --resolve, also show the combined identities of each list as the guard
would match them right now.`,
	Args: cobra.NoArgs,
	RunE: runHosts,
}

var hostsResolve bool

func init() {
	hostsCmd.Flags().BoolVarP(&hostsResolve, "resolve", "r", false, "Resolve the allow-listed domains")
	rootCmd.AddCommand(hostsCmd)
}

type hostList struct {
	Name       string   `json:"name"`
	Mode       string   `json:"mode"`
	Domains    []string `json:"domains"`
	Identities []string `json:"identities,omitempty"`
}

func runHosts(cmd *cobra.Command, args []string) error {
	lists := []hostList{
		{Name: "code hosts", Mode: "github", Domains: network.CodeHosts},
		{Name: "data hosts", Mode: "astropy", Domains: network.DataHosts},
	}

	if hostsResolve {
		for i := range lists {
			lists[i].Identities = network.ResolveAll(cmd.Context(), app.Default.Resolver, lists[i].Domains).Sorted()
		}
	}

	out := cmd.OutOrStdout()
	for _, l := range lists {
		if jsonOutput {
			if err := writeJSON(cmd, l); err != nil {
				return err
			}
			continue
		}

		fmt.Fprintf(out, "%s (--remote-data %s):\n", l.Name, l.Mode)
		for _, d := range l.Domains {
			fmt.Fprintf(out, "  - %s\n", d)
		}
		if len(l.Identities) > 0 {
			fmt.Fprintln(out, "  resolved:")
			for _, id := range l.Identities {
				fmt.Fprintf(out, "    %s\n", id)
			}
		}
	}
	return nil
}
