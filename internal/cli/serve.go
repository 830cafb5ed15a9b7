package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridplace/pkg/api"
)

const defaultAddr = "127.0.0.1:8080"

func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the placement API over HTTP",
		Long: `Serve the placement API over HTTP.

The server starts from --layout (or an empty default grid) and keeps its state
in memory; PUT /v1/config and PUT /v1/widgets replace it. Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, doc, err := c.loadEngine(cmd)
			if err != nil {
				return err
			}
			c.Logger.Info("starting api", "widgets", len(doc.Widgets), "grid", doc.Grid.Size)
			return api.NewServer(e, c.Logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	return cmd
}
