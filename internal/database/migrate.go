package database

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
)

// Migration is one versioned schema change, loaded from a
// NNNNNN_name.up.sql / NNNNNN_name.down.sql pair.
type Migration struct {
	Version    int
	Name       string
	UpScript   string
	DownScript string
}

//go:embed migrations/*.sql
var migrationFS embed.FS

var migrations []Migration

func init() {
	ms, err := loadMigrations(migrationFS)
	if err != nil {
		// Embedded migrations ship with the binary; a malformed set is a
		// build defect, not a runtime condition.
		panic(fmt.Sprintf("invalid embedded migrations: %v", err))
	}
	migrations = ms
}

// loadMigrations reads every up/down pair from the filesystem, sorted by
// version. A missing down script or a file outside the
// NNNNNN_name.up.sql convention is an error.
func loadMigrations(efs fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(efs, "migrations")
	if err != nil {
		return nil, fmt.Errorf("read migrations directory: %w", err)
	}

	var out []Migration
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".up.sql") {
			continue
		}

		base := strings.TrimSuffix(name, ".up.sql")
		parts := strings.SplitN(base, "_", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("migration %s does not match NNNNNN_name.up.sql", name)
		}
		version, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("migration %s has a non-numeric version: %w", name, err)
		}

		upBytes, err := fs.ReadFile(efs, path.Join("migrations", name))
		if err != nil {
			return nil, fmt.Errorf("read up migration %s: %w", name, err)
		}
		downName := base + ".down.sql"
		downBytes, err := fs.ReadFile(efs, path.Join("migrations", downName))
		if err != nil {
			return nil, fmt.Errorf("read down migration %s: %w", downName, err)
		}

		out = append(out, Migration{
			Version:    version,
			Name:       parts[1],
			UpScript:   string(upBytes),
			DownScript: string(downBytes),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Version < out[j].Version
	})
	return out, nil
}

// GetMigrations returns every registered migration, ordered by version.
func GetMigrations() []Migration {
	return migrations
}

// GetMigrationByVersion returns the migration with the given version, or
// nil if none is registered.
func GetMigrationByVersion(version int) *Migration {
	for _, m := range migrations {
		if m.Version == version {
			return &m
		}
	}
	return nil
}

func (m *Migration) String() string {
	return fmt.Sprintf("%06d_%s", m.Version, m.Name)
}
