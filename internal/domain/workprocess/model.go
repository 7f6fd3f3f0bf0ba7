package workprocess

import (
	"time"

	"sda-backend/internal/i18n"
)

type WorkProcess struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TitleEn *string `gorm:"type:text" json:"title_en,omitempty"`
	TitleAz *string `gorm:"type:text" json:"title_az,omitempty"`
	TitleRu *string `gorm:"type:text" json:"title_ru,omitempty"`

	DescriptionEn *string `gorm:"type:text" json:"description_en,omitempty"`
	DescriptionAz *string `gorm:"type:text" json:"description_az,omitempty"`
	DescriptionRu *string `gorm:"type:text" json:"description_ru,omitempty"`

	// Legacy unsuffixed fields kept as the last fallback for old rows.
	Title       *string `gorm:"type:text" json:"title,omitempty"`
	Description *string `gorm:"type:text" json:"description,omitempty"`

	Order    int     `gorm:"not null;default:0;index" json:"order"`
	ImageURL *string `gorm:"type:text" json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *WorkProcess) LocalizedBases() []string {
	return []string{"title", "description"}
}

func (w *WorkProcess) LocalizedField(base string) i18n.Variants {
	switch base {
	case "title":
		return i18n.Variants{En: w.TitleEn, Az: w.TitleAz, Ru: w.TitleRu, Legacy: w.Title}
	case "description":
		return i18n.Variants{En: w.DescriptionEn, Az: w.DescriptionAz, Ru: w.DescriptionRu, Legacy: w.Description}
	}
	return i18n.Variants{}
}
