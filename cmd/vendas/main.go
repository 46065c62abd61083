// Command vendas runs the backend of the WhatsApp sales dashboard.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

//	@title			vendas-whatsapp API
//	@version		1.0
//	@description	Multi-tenant backend for WhatsApp sales: companies, catalog, customers, orders, notifications and integrations.
//	@BasePath		/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Dashboard session: "Bearer <jwt>"

//	@securityDefinitions.apikey	ApiToken
//	@in							header
//	@name						Authorization
//	@description				API token issued in the portal: "Bearer vw_..." (X-API-Key is also accepted)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	envFile string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "vendas",
		Short: "vendas-whatsapp backend",
		Long:  "Backend of the WhatsApp sales dashboard: HTTP API, migrations and bootstrap tasks.",
		// errors are logged by the subcommands
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before the environment")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newAdminCommand(opts))
	cmd.AddCommand(newTokenCommand(opts))
	return cmd
}
