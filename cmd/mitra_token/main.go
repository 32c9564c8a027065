// Command mitra_token mints a signed API token for local development and
// support use. It reads JWT_SECRET the same way the server does.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/poultrymitra/mitra_backend/internal/core/domain"
	"github.com/poultrymitra/mitra_backend/internal/middleware"
	"github.com/poultrymitra/mitra_backend/internal/platform/config"
)

var (
	userID = flag.String("user", "", "Farmer, dealer or admin ID to put in the subject (required)")
	role   = flag.String("role", string(domain.RoleDealer), "Role claim: farmer, dealer or admin")
	ttl    = flag.Duration("ttl", 24*time.Hour, "Token lifetime")
	issuer = flag.String("issuer", "mitra-dev", "Issuer claim")
)

func main() {
	flag.Parse()

	if *userID == "" {
		log.Fatal("Error: -user flag is required.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.IsProduction {
		log.Fatal("Refusing to mint tokens with IS_PRODUCTION=true")
	}

	token, err := middleware.IssueToken(domain.Principal{UserID: *userID, Role: domain.Role(*role)}, cfg.JWTSecret, *ttl, *issuer)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}
	fmt.Println(token)
}
