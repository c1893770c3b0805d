package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Creates the Smartbuy schema. DSN needs multiStatements=true.
func main() {
	_ = godotenv.Load()

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

	sql := `
	CREATE TABLE IF NOT EXISTS users (
	  id CHAR(36) NOT NULL,
	  name VARCHAR(255) NULL,
	  email VARCHAR(255) NOT NULL,
	  role VARCHAR(16) NOT NULL DEFAULT 'customer',
	  avatar_url VARCHAR(512) NULL,
	  phone VARCHAR(32) NULL,
	  password_hash VARCHAR(255) NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS orders (
	  id CHAR(36) NOT NULL,
	  date DATETIME(3) NOT NULL,
	  status VARCHAR(16) NOT NULL,
	  customer_name VARCHAR(255) NULL,
	  customer_email VARCHAR(255) NULL,
	  customer_initial CHAR(1) NULL,
	  discount DECIMAL(5,2) NOT NULL DEFAULT 0,
	  total DECIMAL(12,2) NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_orders_date (date)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS order_items (
	  id CHAR(36) NOT NULL,
	  order_id CHAR(36) NOT NULL,
	  product_id CHAR(36) NOT NULL,
	  product_name VARCHAR(255) NULL,
	  quantity INT NOT NULL,
	  unit_price DECIMAL(12,2) NOT NULL,
	  discount DECIMAL(5,2) NOT NULL DEFAULT 0,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_order_items_order_id (order_id),
	  CONSTRAINT fk_order_items_order FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS suppliers (
	  id CHAR(36) NOT NULL,
	  name VARCHAR(255) NOT NULL,
	  contact_name VARCHAR(255) NULL,
	  email VARCHAR(255) NULL,
	  phone VARCHAR(32) NULL,
	  address VARCHAR(512) NULL,
	  image_url VARCHAR(512) NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS products (
	  id CHAR(36) NOT NULL,
	  name VARCHAR(255) NOT NULL,
	  sales_price DECIMAL(12,2) NOT NULL DEFAULT 0,
	  cost_price DECIMAL(12,2) NOT NULL DEFAULT 0,
	  image_url VARCHAR(512) NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  UNIQUE KEY ux_products_name (name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS purchase_orders (
	  id CHAR(36) NOT NULL,
	  number VARCHAR(32) NOT NULL,
	  date DATETIME(3) NOT NULL,
	  status VARCHAR(16) NOT NULL,
	  supplier_id CHAR(36) NOT NULL,
	  total DECIMAL(12,2) NOT NULL DEFAULT 0,
	  notes TEXT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_purchase_orders_number (number),
	  KEY ix_purchase_orders_supplier (supplier_id),
	  CONSTRAINT fk_purchase_orders_supplier FOREIGN KEY (supplier_id) REFERENCES suppliers(id) ON DELETE RESTRICT
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS purchase_order_items (
	  id CHAR(36) NOT NULL,
	  purchase_order_id CHAR(36) NOT NULL,
	  product_id CHAR(36) NOT NULL,
	  product_name VARCHAR(255) NULL,
	  quantity INT NOT NULL,
	  unit_price DECIMAL(12,2) NOT NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_po_items_po_id (purchase_order_id),
	  CONSTRAINT fk_po_items_po FOREIGN KEY (purchase_order_id) REFERENCES purchase_orders(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS tickets (
	  id CHAR(36) NOT NULL,
	  subject VARCHAR(255) NOT NULL,
	  requester_name VARCHAR(255) NULL,
	  requester_email VARCHAR(255) NULL,
	  status VARCHAR(16) NOT NULL DEFAULT 'open',
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_tickets_updated_at (updated_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS ticket_activities (
	  id CHAR(36) NOT NULL,
	  ticket_id CHAR(36) NOT NULL,
	  message TEXT NOT NULL,
	  direction VARCHAR(8) NOT NULL,
	  sender VARCHAR(255) NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_ticket_activities_ticket (ticket_id, created_at),
	  CONSTRAINT fk_ticket_activities_ticket FOREIGN KEY (ticket_id) REFERENCES tickets(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

	CREATE TABLE IF NOT EXISTS sms_sent_logs (
	  id BIGINT NOT NULL AUTO_INCREMENT,
	  phone VARCHAR(32) NOT NULL,
	  body VARCHAR(1600) NULL,
	  status VARCHAR(16) NOT NULL,
	  provider_message_id VARCHAR(64) NULL,
	  error_message VARCHAR(512) NULL,
	  sent_at DATETIME(3) NULL,
	  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
	  PRIMARY KEY (id),
	  KEY ix_sms_sent_logs_created (created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`

	if _, err := sqlDB.Exec(sql); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	fmt.Println("✓ Tables created successfully!")
}
