package database

import (
	"log"

	"sda-backend/internal/domain/about"
	"sda-backend/internal/domain/admins"
	"sda-backend/internal/domain/approaches"
	"sda-backend/internal/domain/contact"
	"sda-backend/internal/domain/news"
	"sda-backend/internal/domain/partners"
	"sda-backend/internal/domain/projects"
	"sda-backend/internal/domain/sectors"
	"sda-backend/internal/domain/services"
	"sda-backend/internal/domain/team"
	"sda-backend/internal/domain/workprocess"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(dsn string) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	log.Println("Connected and migrated successfully")
}

// Migrate creates or updates the schema for every content model. Parents
// migrate before children so the cascade foreign keys can be created.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&admins.AdminUser{},

		&services.Service{},
		&services.ServiceBenefit{},

		&sectors.PropertySector{},
		&sectors.SectorInn{},

		&projects.Project{},
		&projects.ProjectPhoto{},

		&news.News{},
		&news.NewsSection{},

		&team.TeamMember{},
		&team.TeamSection{},
		&team.TeamSectionItem{},

		&partners.Partner{},
		&partners.PartnerLogo{},

		&about.About{},
		&about.AboutLogo{},

		&approaches.Approach{},
		&workprocess.WorkProcess{},

		&contact.ContactMessage{},
	)
}
