package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"livestock-registry/internal/adapters/auth/jwt"
)

var (
	tokenName string
	tokenTTL  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token <agent-id>",
	Short: "Emite un JWT de agente firmado con JWT_SECRET (uso en desarrollo)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		v, err := jwt.NewVerifier(cfg.JWT.Secret, cfg.JWT.Issuer)
		if err != nil {
			return err
		}
		tok, err := v.Issue(args[0], tokenName, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "agent display name")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
}
