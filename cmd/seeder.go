package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/hrplane/employee-management/internal/auth"
	"github.com/hrplane/employee-management/internal/employee"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample accounts for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		_, gormDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		hasher := auth.NewPasswordHasher(cfg.Security.BcryptCost, cfg.Security.HashWorkers)

		seeds := []struct {
			Email    string
			Name     string
			Org      string
			Role     employee.Role
			Password string
		}{
			{"admin@example.com", "Admin", "People Ops", employee.RoleSuperuser, "admin-password"},
			{"alice@example.com", "Alice", "Engineering", employee.RoleUser, "alice-password"},
		}

		for _, s := range seeds {
			var count int64
			gormDB.Model(&employee.Employee{}).Where("email = ?", s.Email).Count(&count)
			if count > 0 {
				fmt.Printf("user already exists, skipping: %s\n", s.Email)
				continue
			}

			hash, err := hasher.Hash(s.Password)
			if err != nil {
				log.Fatalf("failed to hash seed password: %v", err)
			}

			emp := &employee.Employee{
				Email:        s.Email,
				Name:         s.Name,
				Org:          s.Org,
				Role:         s.Role,
				PasswordHash: hash,
			}

			if err := gormDB.Create(emp).Error; err != nil {
				log.Fatalf("failed to seed user %s: %v", s.Email, err)
			}
			fmt.Printf("seeded user: %s (%s)\n", s.Email, s.Role)
		}
	},
}
