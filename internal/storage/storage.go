package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens the sqlite database at path and migrates the schema.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every pooled connection to :memory: is a separate database, so the
	// pool must stay at one connection there.
	if strings.Contains(path, ":memory:") {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access connection pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&User{}, &Lobby{}, &Community{}, &Rating{}, &Report{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// defaultCommunities are the fixed per-game communities created on first boot.
var defaultCommunities = []Community{
	{
		Name:        "Counter-Strike 2 Community",
		Game:        "Counter-Strike 2",
		Description: "Home of CS2 fans! Find teammates and talk strategy.",
	},
	{
		Name:        "League of Legends Community",
		Game:        "League of Legends",
		Description: "Team up with fellow summoners to climb the ladder and rule Summoner's Rift.",
	},
	{
		Name:        "Valorant Community",
		Game:        "Valorant",
		Description: "Agents, tactics and plenty of action! Connect with Valorant players.",
	},
}

// SeedCommunities creates the default communities that do not exist yet,
// keyed by game.
func SeedCommunities(db *gorm.DB) error {
	for _, c := range defaultCommunities {
		var count int64
		if err := db.Model(&Community{}).Where("game = ?", c.Game).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check community %q: %w", c.Game, err)
		}
		if count > 0 {
			continue
		}

		c.ID = uuid.New().String()
		c.CreatedAt = time.Now()
		if err := db.Create(&c).Error; err != nil {
			return fmt.Errorf("failed to seed community %q: %w", c.Game, err)
		}
	}
	return nil
}
