package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/mirr-x/smart-class-companion/app/config"
	"github.com/mirr-x/smart-class-companion/app/database"
	"github.com/mirr-x/smart-class-companion/app/models"
	"github.com/mirr-x/smart-class-companion/app/routes/auth"
)

// Creates an account from the command line, bypassing the registration
// form. Useful for seeding the first teacher.
func main() {
	username := flag.String("username", "", "login username")
	email := flag.String("email", "", "email address")
	password := flag.String("password", "", "plaintext password (hashed before storing)")
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	role := flag.String("role", "TEACHER", "TEACHER or STUDENT")
	flag.Parse()

	if *username == "" || *email == "" || *password == "" || *firstName == "" || *lastName == "" {
		flag.Usage()
		log.Fatal("username, email, password, first and last are required")
	}

	r := models.Role(strings.ToUpper(*role))
	if !r.Valid() {
		log.Fatalf("invalid role %q (want TEACHER or STUDENT)", *role)
	}

	if _, err := config.Load(); err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if err := config.AppConfig.InitDB(); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	db := config.GetDB()
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Username:  *username,
		Email:     *email,
		Password:  hashed,
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      r,
	}
	if err := database.CreateUser(db, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			log.Fatal("Username or email already in use")
		}
		log.Fatal("Failed to create user:", err)
	}

	fmt.Printf("User created: %s (%s, %s)\n", user.FullName(), user.Username, user.Role)
}
