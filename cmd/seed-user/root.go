package main

import (
	"errors"
	"fmt"

	"till-backend/internal/config"
	"till-backend/internal/database"
	"till-backend/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedOptions struct {
	DSN      string
	Username string `validate:"required,max=100"`
	Password string `validate:"required,min=8"`
	Role     string `validate:"required,oneof=regular editor admin"`
}

var validate = validator.New()

// openDB is replaced in tests.
var openDB = database.Open

func newRootCommand(logger *logrus.Logger) *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:          "seed-user",
		Short:        "Create or update a till back office user",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Struct(opts); err != nil {
				return fmt.Errorf("invalid options: %w", err)
			}

			db, err := openDB(opts.DSN, logger)
			if err != nil {
				return err
			}

			created, err := seedUser(db, opts.Username, opts.Password, models.UserRole(opts.Role))
			if err != nil {
				return err
			}
			verb := "updated"
			if created {
				verb = "created"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user %q %s with role %s\n", opts.Username, verb, opts.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.DSN, "dsn", config.DatabaseDSN(), "postgres DSN (defaults to DATABASE_DSN)")
	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "login name")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "password, at least 8 characters")
	cmd.Flags().StringVarP(&opts.Role, "role", "r", string(models.RoleRegular), "regular|editor|admin")

	return cmd
}

// seedUser inserts username or overwrites its password and role. It
// reports whether a new row was created.
func seedUser(db *gorm.DB, username, password string, role models.UserRole) (bool, error) {
	if !role.Valid() {
		return false, fmt.Errorf("unknown role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	var user models.User
	err = db.Where("username = ?", username).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{Username: username, PasswordHash: string(hash), Role: role}
		if err := db.Create(&user).Error; err != nil {
			return false, fmt.Errorf("create user: %w", err)
		}
		return true, nil
	case err != nil:
		return false, fmt.Errorf("lookup user: %w", err)
	}

	user.PasswordHash = string(hash)
	user.Role = role
	if err := db.Save(&user).Error; err != nil {
		return false, fmt.Errorf("update user: %w", err)
	}
	return false, nil
}
