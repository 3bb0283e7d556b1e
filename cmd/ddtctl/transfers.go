package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/ddt-transfer-api/internal/application/dto"
	"github.com/jhoicas/ddt-transfer-api/internal/application/transfer"
	"github.com/jhoicas/ddt-transfer-api/internal/infrastructure/shopify"
)

type transfersOptions struct {
	after  string
	first  int
	asJSON bool
}

func newTransfersCmd(g *globalOptions) *cobra.Command {
	opts := &transfersOptions{}
	cmd := &cobra.Command{
		Use:   "transfers",
		Short: "Lista los traslados de la tienda (ordenados por ID)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTransfers(cmd, g, opts)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.after, "after", "", "cursor de la página anterior")
	flags.IntVar(&opts.first, "first", 15, "tamaño de página (máx. 100)")
	flags.BoolVar(&opts.asJSON, "json", false, "salida JSON")
	return cmd
}

func runTransfers(cmd *cobra.Command, g *globalOptions, opts *transfersOptions) error {
	api, err := g.adminAPI()
	if err != nil {
		return err
	}
	uc := transfer.NewListTransfersUseCase(shopify.NewTransferFetcher(0))
	page, err := uc.List(cmd.Context(), api, dto.CursorPageRequest{First: opts.first, After: opts.after})
	if err != nil {
		return err
	}

	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tESTADO\tORIGEN\tDESTINO\tRECIBIDO")
	for _, t := range page.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s%%\n",
			t.LegacyID, t.Name, t.Status, t.OriginName, t.DestinationName, t.ReceivedPercent.StringFixed(1))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if page.PageInfo.HasNextPage {
		fmt.Fprintf(cmd.OutOrStdout(), "\nsiguiente página: --after %s\n", page.PageInfo.EndCursor)
	}
	return nil
}
