package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ucad-dsi/gestion-budget/internal/auth"
	"github.com/ucad-dsi/gestion-budget/internal/category"
	categoryRepo "github.com/ucad-dsi/gestion-budget/internal/category/postgres"
	"github.com/ucad-dsi/gestion-budget/internal/user"
	userRepo "github.com/ucad-dsi/gestion-budget/internal/user/postgres"
	"github.com/ucad-dsi/gestion-budget/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the chart of accounts and one account per role for development and testing.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		logger.Init(cfg.Env)
		lg := logger.L()

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open gorm connection: %v", err)
		}

		categoryService := category.NewService(categoryRepo.NewCategoryRepository(gormDB), lg)
		if err := categoryService.EnsureSeeded(); err != nil {
			log.Fatalf("failed to seed budget categories: %v", err)
		}

		userService := user.NewService(userRepo.NewUserRepository(gormDB), cfg.Security.BCryptCost, lg)

		dept := "Informatique"
		accounts := []user.CreateUserDTO{
			{Email: "agent@ucad.sn", Password: "password", Name: "Agent Budget", Role: auth.RoleUser, Department: &dept},
			{Email: "chef@ucad.sn", Password: "password", Name: "Chef de Département", Role: auth.RoleChefDept, Department: &dept},
			{Email: "direction@ucad.sn", Password: "password", Name: "Direction", Role: auth.RoleDirection},
			{Email: "comptable@ucad.sn", Password: "password", Name: "Agent Comptable", Role: auth.RoleComptable},
		}

		for _, account := range accounts {
			u, err := userService.Create(account)
			if err != nil {
				log.Fatalf("failed to seed user %s: %v", account.Email, err)
			}
			fmt.Printf("Seeded user %s (%s)\n", u.Email, u.Role)
		}
	},
}
