package main

import (
	"stagedesk/configs"
	"stagedesk/configs/configsdatabase"
	"stagedesk/configs/configslog"
	"stagedesk/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.LoadConfig()

	if err := configsdatabase.InitDB(cfg.Database); err != nil {
		configslog.Log.Fatal("Database connection failed", zap.Error(err))
	}
	defer configsdatabase.CloseDB()

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views:       engine,
		AppName:     "StageDesk",
		ViewsLayout: "layouts/dashboard_layout",
	})

	routes.SetupRoutes(app, configsdatabase.GetDB())

	configslog.SLog.Infow("Server starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		configslog.Log.Fatal("Server could not start", zap.Error(err))
	}
}
