// Command ddtctl genera DDT y lista traslados desde la terminal, con el mismo
// pipeline (fetcher, motor Liquid y casos de uso) que la API.
package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/ddt-transfer-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
