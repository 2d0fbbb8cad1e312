package main

import (
	"fmt"
	"log"

	"github.com/quantalyze/backoffice/internal/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Dumps the DDL GORM generates for the full schema, history tables
// included. Handy when checking what a tag change does before it hits a
// real database.
func main() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	var tables []string
	db.Raw("SELECT name FROM sqlite_master WHERE type='table'").Scan(&tables)

	for _, table := range tables {
		fmt.Printf("\n=== Table: %s ===\n", table)
		var schema string
		db.Raw(fmt.Sprintf("SELECT sql FROM sqlite_master WHERE name='%s'", table)).Scan(&schema)
		fmt.Println(schema)
	}
}
