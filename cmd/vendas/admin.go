package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MikeMC777/vendas-whatsapp/internal/user"
)

func newAdminCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin-master accounts",
	}
	cmd.AddCommand(newAdminCreateCommand(opts))
	return cmd
}

func newAdminCreateCommand(opts *rootOptions) *cobra.Command {
	var req user.CreateUserRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin-master account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, log, pool, err := bootstrap(ctx, opts)
			defer func() { _ = log.Sync() }()
			if err != nil {
				return err
			}
			defer pool.Close()

			u, err := user.NewService(user.NewPGRepo(pool)).Create(ctx, nil, user.RoleAdminMaster, req)
			if err != nil {
				log.Error("admin not created", zap.String("email", req.Email), zap.Error(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin %s created (%s)\n", u.Email, u.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Nome, "nome", "", "display name")
	cmd.Flags().StringVar(&req.Email, "email", "", "login email")
	cmd.Flags().StringVar(&req.Senha, "senha", "", "password (min 8 characters)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("senha")
	return cmd
}
