package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MikeMC777/vendas-whatsapp/internal/apitoken"
	"github.com/MikeMC777/vendas-whatsapp/internal/company"
)

func newTokenCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage API tokens",
	}
	cmd.AddCommand(newTokenCreateCommand(opts))
	return cmd
}

func newTokenCreateCommand(opts *rootOptions) *cobra.Command {
	var (
		empresaID string
		nome      string
		ttl       time.Duration
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Issue an API token for a company and print it once",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, log, pool, err := bootstrap(ctx, opts)
			defer func() { _ = log.Sync() }()
			if err != nil {
				return err
			}
			defer pool.Close()

			if _, err := company.NewPGRepo(pool).GetByID(ctx, empresaID); err != nil {
				log.Error("company lookup", zap.String("empresa_id", empresaID), zap.Error(err))
				return err
			}
			req := apitoken.CreateRequest{Nome: nome}
			if ttl > 0 {
				exp := time.Now().Add(ttl)
				req.ExpiraEm = &exp
			}
			svc := apitoken.NewService(apitoken.NewPGRepo(pool), apitoken.NewMemoryCache(), 0, log)
			tok, err := svc.Create(ctx, empresaID, req)
			if err != nil {
				log.Error("token not created", zap.Error(err))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok.Plaintext)
			return nil
		},
	}
	cmd.Flags().StringVar(&empresaID, "empresa", "", "company id")
	cmd.Flags().StringVar(&nome, "nome", "cli", "token label")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "lifetime, e.g. 720h (0 = never expires)")
	_ = cmd.MarkFlagRequired("empresa")
	return cmd
}
