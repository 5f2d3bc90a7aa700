// Command kinship answers kinship and subfamily queries over a family
// snapshot file.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/internal/config"
	"github.com/Mbogneng-Junior/Ro-arbre-Genealogique-sub000/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "kinship: %v\n", err)
		os.Exit(2)
	}
	log := logging.New(cfg.Logging, os.Stderr)

	if err := newRootCmd(cfg, log).Execute(); err != nil {
		log.Error("command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
