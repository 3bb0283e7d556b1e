package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/ddt-transfer-api/internal/application/transfer"
	"github.com/jhoicas/ddt-transfer-api/internal/domain/ddt"
	"github.com/jhoicas/ddt-transfer-api/internal/infrastructure/liquid"
	"github.com/jhoicas/ddt-transfer-api/internal/infrastructure/shopify"
	"github.com/jhoicas/ddt-transfer-api/internal/infrastructure/templatefs"
)

type renderOptions struct {
	template string
	out      string
	tz       string
	locale   string
	maxPages int
}

func newRenderCmd(g *globalOptions) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render <transferId>",
		Short: "Genera el HTML del DDT de un traslado",
		Long: `Recupera el traslado con todas sus líneas (paginando de 100 en 100),
evalúa la plantilla Liquid y escribe el HTML en stdout o en --out.
--template - lee la plantilla desde stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, g, opts, args[0])
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.template, "template", g.cfg.Template.Path, "ruta de la plantilla Liquid (- = stdin)")
	flags.StringVarP(&opts.out, "out", "o", "", "archivo de salida (vacío = stdout)")
	flags.StringVar(&opts.tz, "tz", g.cfg.Template.Timezone, "zona horaria del filtro date (vacío = local)")
	flags.StringVar(&opts.locale, "locale", g.cfg.Template.Locale, "locale de format_number")
	flags.IntVar(&opts.maxPages, "max-pages", g.cfg.Shopify.MaxPages, "límite de páginas de líneas (0 = sin límite)")
	return cmd
}

func runRender(cmd *cobra.Command, g *globalOptions, opts *renderOptions, transferID string) error {
	api, err := g.adminAPI()
	if err != nil {
		return err
	}
	loc, err := ddt.LoadLocation(opts.tz)
	if err != nil {
		return err
	}

	var source transfer.TemplateSource = templatefs.NewFileSource(opts.template)
	if opts.template == "-" {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("leer plantilla de stdin: %w", err)
		}
		source = templatefs.StringSource(raw)
	}

	log := g.logger(cmd)
	engine := liquid.NewEngine(liquid.DefaultFilters(loc, ddt.ParseLocale(opts.locale))...)
	uc := transfer.NewRenderDDTUseCase(shopify.NewTransferFetcher(opts.maxPages), source, engine)

	log.Debug().Str("transfer_id", transferID).Str("gid", ddt.TransferGID(transferID)).Msg("generando DDT")
	out, err := uc.Render(cmd.Context(), api, transferID)
	if err != nil {
		return err
	}

	if opts.out == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), out.RenderedHTML)
		return err
	}
	if err := os.WriteFile(opts.out, []byte(out.RenderedHTML), 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", opts.out, err)
	}
	log.Info().Str("path", opts.out).Int("bytes", len(out.RenderedHTML)).Msg("DDT escrito")
	return nil
}
