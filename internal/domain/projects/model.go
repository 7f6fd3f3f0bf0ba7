package projects

import (
	"time"

	"sda-backend/internal/domain/sectors"
	"sda-backend/internal/i18n"
)

type Project struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TitleEn *string `gorm:"type:text;index" json:"title_en,omitempty"`
	TitleAz *string `gorm:"type:text;index" json:"title_az,omitempty"`
	TitleRu *string `gorm:"type:text;index" json:"title_ru,omitempty"`

	DescriptionEn *string `gorm:"type:text" json:"description_en,omitempty"`
	DescriptionAz *string `gorm:"type:text" json:"description_az,omitempty"`
	DescriptionRu *string `gorm:"type:text" json:"description_ru,omitempty"`

	// Legacy unsuffixed fields kept as the last fallback for old rows.
	Title       *string `gorm:"type:text" json:"title,omitempty"`
	Description *string `gorm:"type:text" json:"description,omitempty"`

	Slug *string `gorm:"type:text;uniqueIndex" json:"slug,omitempty"`

	Tag              *string `gorm:"type:text;index" json:"tag,omitempty"`
	Client           *string `gorm:"type:text" json:"client,omitempty"`
	Year             *int    `gorm:"index" json:"year,omitempty"`
	PropertySectorID *uint   `gorm:"index" json:"property_sector_id,omitempty"`
	CoverPhotoURL    *string `gorm:"type:text" json:"cover_photo_url,omitempty"`

	PropertySector *sectors.PropertySector `gorm:"constraint:OnDelete:SET NULL;" json:"property_sector,omitempty"`
	Photos         []ProjectPhoto          `gorm:"constraint:OnDelete:CASCADE;" json:"photos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Project) LocalizedBases() []string {
	return []string{"title", "description"}
}

func (p *Project) LocalizedField(base string) i18n.Variants {
	switch base {
	case "title":
		return i18n.Variants{En: p.TitleEn, Az: p.TitleAz, Ru: p.TitleRu, Legacy: p.Title}
	case "description":
		return i18n.Variants{En: p.DescriptionEn, Az: p.DescriptionAz, Ru: p.DescriptionRu, Legacy: p.Description}
	}
	return i18n.Variants{}
}

type ProjectPhoto struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProjectID uint   `gorm:"not null;index:idx_project_photos_project_order,priority:1" json:"project_id"`
	ImageURL  string `gorm:"type:text;not null" json:"image_url"`
	Order     int    `gorm:"not null;default:0;index:idx_project_photos_project_order,priority:2" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
