package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/ddt-transfer-api/internal/application/ports"
	"github.com/jhoicas/ddt-transfer-api/internal/infrastructure/shopify"
	"github.com/jhoicas/ddt-transfer-api/pkg/config"
	"github.com/jhoicas/ddt-transfer-api/pkg/logger"
)

// globalOptions flags compartidos por todos los subcomandos.
type globalOptions struct {
	cfg *config.Config

	shop       string
	token      string
	apiVersion string
	endpoint   string
	timeout    time.Duration
	verbose    bool
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := &globalOptions{cfg: cfg}

	root := &cobra.Command{
		Use:           "ddtctl",
		Short:         "Documento di Trasporto para traslados de inventario de Shopify",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.shop, "shop", cfg.Shopify.Shop, "tienda (demo.myshopify.com); por defecto SHOPIFY_SHOP")
	flags.StringVar(&opts.token, "token", cfg.Shopify.AccessToken, "access token de la Admin API; por defecto SHOPIFY_ACCESS_TOKEN")
	flags.StringVar(&opts.apiVersion, "api-version", cfg.Shopify.APIVersion, "versión de la Admin API")
	flags.StringVar(&opts.endpoint, "endpoint", "", "URL GraphQL explícita (proxies y pruebas)")
	flags.DurationVar(&opts.timeout, "timeout", cfg.Shopify.UpstreamTimeout, "timeout por petición a la Admin API")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "logs de depuración en stderr")
	_ = flags.MarkHidden("endpoint")

	root.AddCommand(newRenderCmd(opts), newTransfersCmd(opts), newTokenCmd(opts))
	return root
}

// adminAPI cliente de la Admin API a partir de los flags.
func (o *globalOptions) adminAPI() (ports.AdminAPI, error) {
	if o.endpoint == "" && o.shop == "" {
		return nil, fmt.Errorf("--shop es obligatorio (o SHOPIFY_SHOP)")
	}
	if o.token == "" {
		return nil, fmt.Errorf("--token es obligatorio (o SHOPIFY_ACCESS_TOKEN)")
	}
	return shopify.NewClient(shopify.ClientConfig{
		Shop:        o.shop,
		AccessToken: o.token,
		APIVersion:  o.apiVersion,
		Endpoint:    o.endpoint,
		HTTPClient:  &http.Client{Timeout: o.timeout},
	}), nil
}

func (o *globalOptions) logger(cmd *cobra.Command) *logger.Logger {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	return logger.New(logger.Config{Env: "development", Level: level, Out: cmd.ErrOrStderr()})
}
