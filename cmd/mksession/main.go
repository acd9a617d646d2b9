// Command mksession mints a session token for an existing user,
// useful for local development and API smoke tests while the real
// auth provider lives elsewhere.
//
// Usage:
//
//	mksession -user <user-id> [-ttl 24h]
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/youruser/pengdeck/internal/session"
	"github.com/youruser/pengdeck/internal/store"
)

func main() {
	userID := flag.String("user", "", "user id to create a session for")
	ttl := flag.Duration("ttl", 24*time.Hour, "session lifetime")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "mksession: -user is required")
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "no .env file found, using environment")
	}

	db, err := store.NewGormDB(os.Getenv("DATABASE_URL"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "connecting to database:", err)
		os.Exit(1)
	}

	token, err := session.NewStore(db).Create(*userID, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "creating session:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
