package main

import (
	"flag"
	"log"

	"github.com/mirr-x/smart-class-companion/app/config"
	"github.com/mirr-x/smart-class-companion/app/database"
)

func main() {
	down := flag.Bool("down", false, "roll back the most recent migration")
	flag.Parse()

	if _, err := config.Load(); err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if err := config.AppConfig.InitDB(); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	db := config.GetDB()
	defer db.Close()

	if *down {
		if err := database.RollbackMigration(db); err != nil {
			log.Fatal("Rollback failed:", err)
		}
		log.Println("Rolled back most recent migration")
		return
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Println("Migrations applied successfully")
}
