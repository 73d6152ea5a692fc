package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/fieldtrack/fieldtrack/core"
	"github.com/fieldtrack/fieldtrack/core/refdata"
	"github.com/fieldtrack/fieldtrack/validation"
	web "github.com/fieldtrack/fieldtrack/web/common"
	"github.com/fieldtrack/fieldtrack/web/handlers/timesheet"
)

func main() {
	dsn := os.Getenv("DSN")
	if dsn == "" {
		log.Fatal("DSN is required, e.g. user:pass@tcp(localhost:3306)/fieldtrack?parseTime=true")
	}

	dataset := refdata.Default()
	if path := os.Getenv("REFDATA"); path != "" {
		ds, err := refdata.Load(path)
		if err != nil {
			log.Fatalf("load reference data: %v", err)
		}
		dataset = ds
	}

	dm := core.NewMySQL(dsn, 10)
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

	lookup := refdata.NewLookup(dataset)
	store := core.NewStore(dm, lookup)
	engine := validation.NewEngine(lookup)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		status := store.HealthCheck()
		code := http.StatusOK
		if !status.Healthy {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, web.NewSuccessResponse(status))
	})

	api := r.Group("/api/v1")
	timesheet.Register(api, store, engine)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}
	r.Run("0.0.0.0:" + port)
}
