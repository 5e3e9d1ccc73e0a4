package cli

import (
	"github.com/spf13/cobra"

	"github.com/just-one-coder/flux-prism/internal/services/api"
	"github.com/just-one-coder/flux-prism/internal/services/api/controllers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the registration workflow over HTTP",
	Long: "Runs a REST API on REST_HOST with register, verify and gallery\n" +
		"endpoints backed by the same orchestrators as the CLI commands.",
	Run: runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	if err := container.Provide(controllers.NewRestController); err != nil {
		fatal(err)
	}
	if err := container.Provide(api.New); err != nil {
		fatal(err)
	}

	err := container.Invoke(func(a api.API) {
		if err := a.Start(); err != nil {
			fatal(err)
		}
	})
	if err != nil {
		fatal(err)
	}
}
