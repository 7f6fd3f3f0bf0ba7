package approaches

import (
	"time"

	"sda-backend/internal/i18n"
)

type Approach struct {
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

	Order int `gorm:"not null;default:0;index" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Approach) LocalizedBases() []string {
	return []string{"title", "description"}
}

func (a *Approach) LocalizedField(base string) i18n.Variants {
	switch base {
	case "title":
		return i18n.Variants{En: a.TitleEn, Az: a.TitleAz, Ru: a.TitleRu, Legacy: a.Title}
	case "description":
		return i18n.Variants{En: a.DescriptionEn, Az: a.DescriptionAz, Ru: a.DescriptionRu, Legacy: a.Description}
	}
	return i18n.Variants{}
}
