package main

import (
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/catarinaserranomartins1312/VDS/internal/api"
	"github.com/catarinaserranomartins1312/VDS/internal/engine"
)

func main() {
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = "merged_health_data.csv"
	}

	e := echo.New()
	e.JSONSerializer = api.JSONSerializer{}
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	// The API is live immediately but answers 503 until the dataset
	// lands.
	h := api.NewHandler(nil)
	h.RegisterRoutes(e)

	go func() {
		log.Println("BACKGROUND: loading dataset...")
		t0 := time.Now()

		table, err := engine.Load(dataPath)
		if err != nil {
			// A partial table is never acceptable; the session dies.
			log.Fatalf("dataset load failed: %v", err)
		}
		h.SetData(table)

		log.Printf("BACKGROUND: dataset ready in %v.", time.Since(t0))
	}()

	log.Println("Server ready on port 8080 (dataset loading in background...)")
	e.Logger.Fatal(e.Start(":8080"))
}
