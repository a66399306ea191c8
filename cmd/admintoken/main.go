package main

import (
	"fmt"
	"os"
	"time"

	"league-results-backend/internal/auth"
	"league-results-backend/internal/config"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// admintoken prints a bearer token for the admin routes, signed with the server's JWT_SECRET
func main() {
	_ = godotenv.Load()

	flags := pflag.NewFlagSet("admintoken", pflag.ExitOnError)
	username := flags.StringP("user", "u", "", "name recorded in the token and in request logs")
	ttl := flags.Duration("ttl", 12*time.Hour, "token lifetime")
	_ = flags.Parse(os.Args[1:])

	token, err := issueToken(*username, *ttl)
	if err != nil {
		logrus.WithError(err).Error("Failed to issue admin token")
		flags.Usage()
		os.Exit(1)
	}
	fmt.Println(token)
}

func issueToken(username string, ttl time.Duration) (string, error) {
	if username == "" {
		return "", fmt.Errorf("--user is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}

	service, err := auth.NewAuthService(cfg.JWTSecret, ttl)
	if err != nil {
		return "", err
	}
	return service.GenerateJWT(username, auth.RoleAdmin)
}
