package main

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Dev helper: creates the payments table (normally owned by the donation
// checkout service) and this service's notification log.
func main() {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get DB: %v", err)
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS payments (
		  transaction_id VARCHAR(128) NOT NULL,
		  done TINYINT(1) NOT NULL DEFAULT 0,
		  name VARCHAR(255) NULL,
		  message VARCHAR(1024) NULL,
		  upi_id VARCHAR(128) NULL,
		  razorpay_payment_id VARCHAR(128) NULL,
		  to_user VARCHAR(128) NULL,
		  amount DOUBLE NOT NULL DEFAULT 0,
		  updated_at DATETIME(3) NULL,
		  PRIMARY KEY (transaction_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,

		`CREATE TABLE IF NOT EXISTS notification_logs (
		  id CHAR(36) NOT NULL,
		  to_addr VARCHAR(128) NOT NULL,
		  body VARCHAR(1024) NOT NULL,
		  has_media TINYINT(1) NOT NULL DEFAULT 0,
		  status VARCHAR(16) NOT NULL,
		  error_message VARCHAR(255) NULL,
		  sent_at DATETIME(3) NOT NULL,
		  PRIMARY KEY (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
	}

	for _, stmt := range stmts {
		if _, err := sqlDB.Exec(stmt); err != nil {
			log.Fatalf("Failed to create table: %v", err)
		}
	}

	log.Println("Tables created.")
}
