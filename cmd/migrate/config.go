package main

import (
	"io/fs"
	"os"

	migrations "bookstore/db"
)

const diskMigrationsDir = "db/migrations"

// migrationSource picks the filesystem goose reads from. The embedded
// migrations ship with the binary; MIGRATIONS_DIR switches to a directory
// on disk. A nil fs.FS means the OS filesystem.
func migrationSource() (fs.FS, string) {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return nil, v
	}
	return migrations.Migrations, migrations.MigrationsDir
}

// createDir is where new migration files are written.
func createDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return diskMigrationsDir
}
