package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"pickandtip/backend/internal/storage"

	jwt "github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		fmt.Println("Commands: token, submissions [status], mark <id> <status>")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "token":
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			fmt.Println("JWT_SECRET must be set.")
			os.Exit(1)
		}
		token, err := adminToken(secret)
		if err != nil {
			log.Fatalf("Error issuing admin token: %v", err)
		}
		fmt.Println(token)
	case "submissions":
		status := ""
		if len(os.Args) > 2 {
			status = os.Args[2]
		}
		subs, err := openStorage().GetSubmissions(status)
		if err != nil {
			log.Fatalf("Error listing submissions: %v", err)
		}
		for _, sub := range subs {
			fmt.Printf("%s  [%s]  %s <%s>  %s\n",
				sub.CreatedAt.Format("2006-01-02 15:04"), sub.Status, sub.Name, sub.Email, sub.Subject)
		}
	case "mark":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin mark <submission_id> <status>")
			os.Exit(1)
		}
		if err := openStorage().MarkSubmission(os.Args[2], os.Args[3]); err != nil {
			log.Fatalf("Error updating submission: %v", err)
		}
		fmt.Printf("Submission %s marked %s.\n", os.Args[2], os.Args[3])
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func openStorage() *storage.Service {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	return storage.NewStorageService(db, nil) // No redis needed for admin CLI
}

// adminToken issues a short-lived token with the admin role for the
// reload endpoint.
func adminToken(secret string) (string, error) {
	claims := jwt.MapClaims{
		"anon_id": "admin-cli",
		"role":    "admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
		"iss":     "pickandtip-api",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
