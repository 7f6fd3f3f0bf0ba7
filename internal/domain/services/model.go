package services

import (
	"time"

	"sda-backend/internal/i18n"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	NameEn *string `gorm:"type:text" json:"name_en,omitempty"`
	NameAz *string `gorm:"type:text" json:"name_az,omitempty"`
	NameRu *string `gorm:"type:text" json:"name_ru,omitempty"`

	DescriptionEn *string `gorm:"type:text" json:"description_en,omitempty"`
	DescriptionAz *string `gorm:"type:text" json:"description_az,omitempty"`
	DescriptionRu *string `gorm:"type:text" json:"description_ru,omitempty"`

	HeroTextEn *string `gorm:"type:text" json:"hero_text_en,omitempty"`
	HeroTextAz *string `gorm:"type:text" json:"hero_text_az,omitempty"`
	HeroTextRu *string `gorm:"type:text" json:"hero_text_ru,omitempty"`

	MetaTitleEn *string `gorm:"type:text" json:"meta_title_en,omitempty"`
	MetaTitleAz *string `gorm:"type:text" json:"meta_title_az,omitempty"`
	MetaTitleRu *string `gorm:"type:text" json:"meta_title_ru,omitempty"`

	MetaDescriptionEn *string `gorm:"type:text" json:"meta_description_en,omitempty"`
	MetaDescriptionAz *string `gorm:"type:text" json:"meta_description_az,omitempty"`
	MetaDescriptionRu *string `gorm:"type:text" json:"meta_description_ru,omitempty"`

	// Legacy unsuffixed fields kept as the last fallback for old rows.
	Name            *string `gorm:"type:text" json:"name,omitempty"`
	Description     *string `gorm:"type:text" json:"description,omitempty"`
	HeroText        *string `gorm:"type:text" json:"hero_text,omitempty"`
	MetaTitle       *string `gorm:"type:text" json:"meta_title,omitempty"`
	MetaDescription *string `gorm:"type:text" json:"meta_description,omitempty"`

	Slug     string  `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	ImageURL *string `gorm:"type:text" json:"image_url,omitempty"`
	IconURL  *string `gorm:"type:text" json:"icon_url,omitempty"`
	Order    int     `gorm:"not null;default:0;index" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) LocalizedBases() []string {
	return []string{"name", "description", "hero_text", "meta_title", "meta_description"}
}

func (s *Service) LocalizedField(base string) i18n.Variants {
	switch base {
	case "name":
		return i18n.Variants{En: s.NameEn, Az: s.NameAz, Ru: s.NameRu, Legacy: s.Name}
	case "description":
		return i18n.Variants{En: s.DescriptionEn, Az: s.DescriptionAz, Ru: s.DescriptionRu, Legacy: s.Description}
	case "hero_text":
		return i18n.Variants{En: s.HeroTextEn, Az: s.HeroTextAz, Ru: s.HeroTextRu, Legacy: s.HeroText}
	case "meta_title":
		return i18n.Variants{En: s.MetaTitleEn, Az: s.MetaTitleAz, Ru: s.MetaTitleRu, Legacy: s.MetaTitle}
	case "meta_description":
		return i18n.Variants{En: s.MetaDescriptionEn, Az: s.MetaDescriptionAz, Ru: s.MetaDescriptionRu, Legacy: s.MetaDescription}
	}
	return i18n.Variants{}
}

type ServiceBenefit struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"type:text;not null" json:"title"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	Order       int     `gorm:"not null;default:0;index" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
