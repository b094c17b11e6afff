package Models

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the database and runs migrations. The dialect is picked once
// at startup: PostgreSQL when DATABASE_URL is set, SQLite otherwise.
func Connect() {
	var (
		connection *gorm.DB
		err        error
	)
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		connection, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		connection, err = gorm.Open(sqlite.Open("momentum.db"), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	DB = connection

	// 1. Users first, everything else hangs off them
	DB.AutoMigrate(&User{})

	// 2. Owned rows
	DB.AutoMigrate(
		&Task{},
		&Goal{},
		&DailyEntry{},
		&Achievement{},
	)

	if err := SetupIndexes(DB); err != nil {
		log.Printf("Error creating indexes: %v", err)
	}

	seedAdmin(DB)
}

// SetupIndexes creates the uniqueness constraints the application relies on:
// one journal entry per (user, date) and at most one achievement per
// (user, name). Achievement awarding treats a violation as "already earned".
func SetupIndexes(db *gorm.DB) error {
	if err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_daily_entries_user_date ON daily_entries (user_id, entry_date)").Error; err != nil {
		return err
	}
	return db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_achievements_user_name ON achievements (user_id, name)").Error
}

// seedAdmin creates the bootstrap admin account on first run.
func seedAdmin(db *gorm.DB) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return
	}

	var existing User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}
	admin := User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        os.Getenv("ADMIN_EMAIL"),
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error creating admin account: %v", err)
	}
}
