package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pendergraft/seiconf/internal/chains"
)

func createNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List the networks seiconf configures",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNetworks(cmd)
		},
	}
}

func runNetworks(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCHAIN ID\tRPC\tEXPLORER API\tDESCRIPTION")
	for _, n := range chains.SeiRegistry().List() {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", n.Name, n.ChainID, n.RPCURL, n.Explorer.APIURL, n.DisplayName)
	}
	return w.Flush()
}
