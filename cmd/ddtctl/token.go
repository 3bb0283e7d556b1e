package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/ddt-transfer-api/pkg/jwt"
)

type tokenOptions struct {
	apiKey    string
	apiSecret string
	userID    string
	ttl       time.Duration
}

// newTokenCmd firma un session token para llamar a /app/* sin el admin embebido.
func newTokenCmd(g *globalOptions) *cobra.Command {
	opts := &tokenOptions{}
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Genera un session token de desarrollo para la API HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if g.shop == "" {
				return fmt.Errorf("--shop es obligatorio (o SHOPIFY_SHOP)")
			}
			if opts.apiKey == "" {
				return fmt.Errorf("--api-key es obligatorio (o SHOPIFY_API_KEY)")
			}
			tok, err := jwt.Generate(opts.apiSecret, opts.apiKey, g.shop, opts.userID, opts.ttl)
			if err != nil {
				return fmt.Errorf("firmar token: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.apiKey, "api-key", g.cfg.Shopify.APIKey, "API key de la app; por defecto SHOPIFY_API_KEY")
	flags.StringVar(&opts.apiSecret, "api-secret", g.cfg.Shopify.APISecret, "API secret de la app; por defecto SHOPIFY_API_SECRET")
	flags.StringVar(&opts.userID, "user", "1", "sub del token")
	flags.DurationVar(&opts.ttl, "ttl", time.Hour, "validez del token")
	return cmd
}
