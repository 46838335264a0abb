package cli

import (
	"net"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roughdraw/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering service",
		Long: `Serve renders over HTTP. POST an Excalidraw document to /v1/render and
receive the artifact; render options are query parameters.

The cache and font settings come from the config file, so several instances
can share one Redis cache.`,
		Example: `  roughdraw serve --addr :9000
  curl --data-binary @diagram.excalidraw "localhost:8080/v1/render?format=svg"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}

			runner, err := c.newRunner(ctx, false)
			if err != nil {
				return err
			}
			defer runner.Close()

			srv := server.New(runner, server.Options{
				Addr:         addr,
				MaxBodyBytes: c.Config.Server.MaxBodyBytes,
				Logger:       c.Logger,
			})
			printInfo("Serving on %s", addr)
			printNextStep("Try", `curl --data-binary @diagram.excalidraw "localhost`+portOf(addr)+`/v1/render?format=svg"`)
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	return cmd
}

// portOf returns the ":port" suffix of a listen address.
func portOf(addr string) string {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return ""
	}
	return ":" + port
}
