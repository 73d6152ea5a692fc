package main

import (
	"flag"
	"log"
	"os"

	"github.com/fieldtrack/fieldtrack/core"
	"github.com/fieldtrack/fieldtrack/core/refdata"
)

func main() {
	refdataPath := flag.String("refdata", "", "path to a reference data YAML file (built-in catalog when empty)")
	sqlitePath := flag.String("sqlite", "", "seed a local sqlite file instead of the DSN database")
	flag.Parse()

	dataset := refdata.Default()
	if *refdataPath != "" {
		ds, err := refdata.Load(*refdataPath)
		if err != nil {
			log.Fatalf("load reference data: %v", err)
		}
		dataset = ds
	}

	var dm *core.DatabaseManager
	if *sqlitePath != "" {
		dm = core.NewSQLite(*sqlitePath)
	} else {
		dsn := os.Getenv("DSN")
		if dsn == "" {
			log.Fatal("DSN is required when -sqlite is not set")
		}
		dm = core.NewMySQL(dsn, 5)
	}

	if err := dm.Initialize(); err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	sm := core.NewSchemaManager(dm)
	if err := sm.CreateSchema(); err != nil {
		log.Fatal(err)
	}
	if err := sm.Migrate(); err != nil {
		log.Fatal(err)
	}
	if err := sm.Seed(dataset); err != nil {
		log.Fatal(err)
	}

	version, _ := sm.Version()
	log.Printf("schema v%d ready, reference data seeded", version)
}
