// Command mappingkml looks up land parcels in the NSW, QLD and SA
// cadastre services and exports their boundaries to styled KML files.
package main

import (
	"fmt"
	"os"

	"github.com/mappingkml/mappingkml-cli/internal/adapters/driven/config/file"
	"github.com/mappingkml/mappingkml-cli/internal/adapters/driven/export/kml"
	"github.com/mappingkml/mappingkml-cli/internal/adapters/driven/storage/sqlite"
	"github.com/mappingkml/mappingkml-cli/internal/adapters/driving/cli"
	"github.com/mappingkml/mappingkml-cli/internal/connectors/arcgis"
	nswconn "github.com/mappingkml/mappingkml-cli/internal/connectors/nsw"
	qldconn "github.com/mappingkml/mappingkml-cli/internal/connectors/qld"
	saconn "github.com/mappingkml/mappingkml-cli/internal/connectors/sa"
	"github.com/mappingkml/mappingkml-cli/internal/core/ports/driven"
	"github.com/mappingkml/mappingkml-cli/internal/core/services"
	"github.com/mappingkml/mappingkml-cli/internal/logger"
	nswparse "github.com/mappingkml/mappingkml-cli/internal/parsers/nsw"
	qldparse "github.com/mappingkml/mappingkml-cli/internal/parsers/qld"
	saparse "github.com/mappingkml/mappingkml-cli/internal/parsers/sa"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config: %w", err)
	}

	client := arcgis.NewClient()

	lookup := services.NewLookupService(
		[]driven.EntryParser{
			nswparse.New(),
			qldparse.New(),
			saparse.New(),
		},
		[]driven.CadastreConnector{
			nswconn.New(client),
			qldconn.New(client),
			saconn.New(client),
		},
	)

	export := services.NewExportService(kml.NewExporter(), configStore)

	svc := cli.Services{
		Lookup: lookup,
		Export: export,
		Config: configStore,
	}

	// History is best effort: a broken local database must not block
	// searches.
	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("search history disabled: %v", err)
	} else {
		defer store.Close()
		historyStore := store.HistoryStore()
		lookup.SetHistoryStore(historyStore)
		svc.History = services.NewHistoryService(historyStore)
	}

	cli.SetServices(svc)
	cli.SetVersion(version)

	return cli.Execute()
}
