package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/npsgo/pension-calculator/internal/calculation"
	"github.com/npsgo/pension-calculator/internal/server"
)

func newServeCmd(debug *bool) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection engine as an HTTP JSON API",
		RunE: func(_ *cobra.Command, _ []string) error {
			if port == "" {
				port = os.Getenv("PORT")
			}
			if port == "" {
				port = "8080"
			}

			logger := newLogger(*debug)
			engine := calculation.NewProjectionEngine()
			engine.SetLogger(logger)

			return server.New(engine, logger).ListenAndServe(":" + port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (defaults to PORT env, then 8080)")
	return cmd
}
