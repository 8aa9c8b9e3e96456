// mktoken mints a signed JWT for the back-office API using the JWT_SECRET
// from the environment. Used to provision admin access until a full account
// system exists.
package main

import (
	"flag"
	"fmt"

	"codeberg.org/atelier/server/internal/auth"
	"codeberg.org/atelier/server/internal/logger"
	"github.com/joho/godotenv"
)

func main() {
	userID := flag.String("user", "", "user id to embed in the token")
	email := flag.String("email", "", "account email to embed in the token")
	role := flag.String("role", auth.RoleAdmin, "token role: admin or customer")
	flag.Parse()

	_ = godotenv.Load() //nolint:errcheck // a missing .env falls back to the environment

	if *userID == "" || *email == "" {
		logger.Fatal("both -user and -email are required")
	}

	if *role != auth.RoleAdmin && *role != auth.RoleCustomer {
		logger.Fatal("unknown role", "role", *role)
	}

	token, err := auth.GenerateJWT(*userID, *email, *role)
	if err != nil {
		logger.FatalErr(err, "failed to mint token")
	}

	fmt.Println(token)
}
