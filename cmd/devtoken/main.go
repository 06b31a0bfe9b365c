// Command devtoken mints a cashier token signed with the configured JWT secret.
// Cashier identity is managed outside this service; this is for local use and tests.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/shift_cashbox_app/internal/platform/config"
	"github.com/SscSPs/shift_cashbox_app/internal/utils"
	"github.com/google/uuid"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cashierID := flag.String("id", "", "cashier id (random when empty)")
	name := flag.String("name", "", "cashier display name")
	email := flag.String("email", "", "cashier email")
	expiry := flag.Duration("ttl", 0, "token lifetime (defaults to JWT_EXPIRY_DURATION)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *cashierID == "" {
		*cashierID = uuid.NewString()
	}
	if *name == "" {
		logger.Error("A cashier name is required", slog.String("flag", "-name"))
		os.Exit(2)
	}
	ttl := cfg.JWTExpiryDuration
	if *expiry > 0 {
		ttl = *expiry
	}

	token, err := utils.GenerateCashierJWT(*cashierID, *name, *email, cfg.JWTSecret, ttl, cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(token)
}
