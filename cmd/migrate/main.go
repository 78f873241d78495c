package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/baraholka/baraholka-backend/internal/config"
	"github.com/baraholka/baraholka-backend/internal/migration"
	pkglogger "github.com/baraholka/baraholka-backend/pkg/logger"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	configPath := flag.String("config", "", "path to config yaml (default: configs/config.$APP_ENV.yaml)")
	flag.Parse()

	_ = config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)

	path := *configPath
	if path == "" {
		path = fmt.Sprintf("configs/config.%s.yaml", env)
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.GetDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	pkglogger.Info("Migrations applied")
}
