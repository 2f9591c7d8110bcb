package main

import (
	"log"
	"net/http"

	"github.com/wo-ong-dev/my-budget-app-sub000/src/api"
	"github.com/wo-ong-dev/my-budget-app-sub000/src/config"
	"github.com/wo-ong-dev/my-budget-app-sub000/src/db"
	sqldb "github.com/wo-ong-dev/my-budget-app-sub000/src/db/sql"
	"github.com/wo-ong-dev/my-budget-app-sub000/src/rebalance"
	"github.com/wo-ong-dev/my-budget-app-sub000/src/settlement"
)

func main() {
	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("DB migration failed: %v", err)
	}

	db.InitCache()

	store := sqldb.NewStore(pool)
	engine := rebalance.NewEngine(rebalance.DefaultCategoryAccounts, cfg.PatternKeyMaxLen)
	rebalanceSvc := rebalance.NewService(store, engine)
	settlementSvc := settlement.NewService(store, cfg.SettlementBalancedThreshold)

	// Router
	router := api.NewRouter(rebalanceSvc, settlementSvc, cfg.AllowedOrigins, cfg.ReadOnly)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
