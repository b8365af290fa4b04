package main

import (
	"fmt"
	"time"

	"hostel-directory-backend/internal/auth"
	"hostel-directory-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	tokenUser string
	tokenRole string
	tokenTTL  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a JWT for a user and role",
	Long: `Issue a signed JWT using JWT_SECRET. Useful for operators calling admin
routes when AUTH_ENABLED=true.`,
	Example: `  server token --user 6f1c... --role admin`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := uuid.Parse(tokenUser)
		if err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}
		authService, err := auth.NewAuthService(cfg.JWTSecret, tokenTTL)
		if err != nil {
			return err
		}
		token, err := authService.GenerateJWT(userID, models.UserRole(tokenRole))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUser, "user", "", "User ID (UUID)")
	tokenCmd.Flags().StringVar(&tokenRole, "role", string(models.UserRoleAdmin), "Role: user, admin or super_admin")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "Token lifetime")
	_ = tokenCmd.MarkFlagRequired("user")
}
