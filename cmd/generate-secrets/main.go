package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/goswift/booking-backend/internal/utils"
)

func main() {
	password := flag.String("password", "", "also print a bcrypt hash of this password for seeding users.password_hash")
	flag.Parse()

	fmt.Println("===========================================")
	fmt.Println("Secret Generator for GoSwift")
	fmt.Println("===========================================")
	fmt.Println()

	secret, err := utils.GenerateJWTSecret()
	if err != nil {
		log.Fatalf("Failed to generate secret: %v", err)
	}

	fmt.Println("Add this to your .env file:")
	fmt.Println()
	fmt.Printf("JWT_SECRET=%s\n", secret)

	if *password != "" {
		hash, err := utils.HashPassword(*password)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		fmt.Println()
		fmt.Printf("password_hash=%s\n", hash)
	}

	fmt.Println()
	fmt.Println("IMPORTANT: Keep these values safe and never commit them to version control!")
	fmt.Println("===========================================")
}
