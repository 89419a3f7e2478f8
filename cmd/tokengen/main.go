// tokengen mints an API bearer token signed with JWT_SECRET, for handing to
// clients of a deployment that runs with auth enabled.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"tripwise/pkg/utils"
)

func main() {
	client := flag.String("client", "", "client name to embed in the token")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	if *client == "" {
		log.Fatal("-client is required")
	}
	if !utils.AuthEnabled() {
		log.Fatal("JWT_SECRET is not set, nothing to sign with")
	}

	token, err := utils.CreateToken(*client, *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Println(token)
}
