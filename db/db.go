package db

import (
	"fmt"
	"log"

	"github.com/plumehq/plume/config"
	"github.com/plumehq/plume/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type GormDB struct {
	DB *gorm.DB
}

func GetDB(c *config.Config) *GormDB {
	gormDB := &GormDB{}
	gormDB.Init(c)
	return gormDB
}

func (g *GormDB) Init(c *config.Config) {
	g.DB = getPostgresDB(c)

	if err := migrate(g.DB); err != nil {
		log.Fatalf("unable to run migrations: %v", err)
	}
}

func getPostgresDB(c *config.Config) *gorm.DB {
	log.Printf("Connecting to postgres: %s@%s:%d/%s", c.PostgresUser, c.PostgresHost, c.PostgresPort, c.PostgresDB)
	postgresDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d",
		c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort)

	gormConfig := &gorm.Config{}
	if c.Env != "prod" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		DSN: postgresDSN,
	}), gormConfig)
	if err != nil {
		log.Fatal(err)
	}

	return gormDB
}

// SeedGroups creates the default groups. Groups are an admin concern;
// the API only ever reads them.
func SeedGroups(db *gorm.DB) error {
	groups := []models.Group{
		{Title: "General", Slug: "general", Description: "Anything that doesn't fit elsewhere"},
		{Title: "Tech", Slug: "tech", Description: "Software, hardware and the internet"},
		{Title: "Travel", Slug: "travel", Description: "Trips, places and journeys"},
	}

	for _, group := range groups {
		if err := db.FirstOrCreate(&group, models.Group{Slug: group.Slug}).Error; err != nil {
			return err
		}
	}

	return nil
}

func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Blacklist{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
	if err != nil {
		return fmt.Errorf("migrations error: %v", err)
	}

	// Self-follows are rejected in the service layer too, but the check
	// constraint keeps bad rows out no matter who writes.
	if err := db.Exec(`ALTER TABLE follows DROP CONSTRAINT IF EXISTS chk_follow_not_self`).Error; err != nil {
		return fmt.Errorf("migrations error: %v", err)
	}
	if err := db.Exec(`ALTER TABLE follows ADD CONSTRAINT chk_follow_not_self CHECK (user_id <> author_id)`).Error; err != nil {
		return fmt.Errorf("migrations error: %v", err)
	}

	if err := SeedGroups(db); err != nil {
		return fmt.Errorf("seeding groups error: %v", err)
	}

	return nil
}
