package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/limbo/placebetween/pkg/config"
	jwtservice "github.com/limbo/placebetween/pkg/jwt_service"
	"github.com/spf13/cobra"
)

var (
	tokenUsername string
	tokenTTL      time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a development token signed with PB_JWT_SECRET",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUsername, "username", "", "Username claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
}

func runToken(cmd *cobra.Command, args []string) error {
	if userFlag == "" {
		return errors.New("--user is required")
	}
	token, err := jwtservice.New(config.New().JWTSecret).GenerateToken(userFlag, tokenUsername, tokenTTL)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_in":   int(tokenTTL.Seconds()),
			"subject":      userFlag,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
