package main

import (
	"flag"

	"stagedesk/configs"
	"stagedesk/configs/configsdatabase"
	"stagedesk/configs/configslog"
	"stagedesk/database"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()
	migrateFlag := flag.Bool("migrate", false, "Run the schema migrations")
	seedFlag := flag.Bool("seed", false, "Run the lookup table seeders")
	flag.Parse()

	cfg := configs.LoadConfig()
	if err := configsdatabase.InitDB(cfg.Database); err != nil {
		configslog.SLog.Fatalf("Database connection failed: %v", err)
	}
	defer configsdatabase.CloseDB()

	database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag)
}
