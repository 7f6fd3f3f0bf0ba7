package partners

import (
	"time"

	"sda-backend/internal/i18n"
)

type Partner struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TitleEn *string `gorm:"type:text" json:"title_en,omitempty"`
	TitleAz *string `gorm:"type:text" json:"title_az,omitempty"`
	TitleRu *string `gorm:"type:text" json:"title_ru,omitempty"`

	ButtonTextEn *string `gorm:"type:text" json:"button_text_en,omitempty"`
	ButtonTextAz *string `gorm:"type:text" json:"button_text_az,omitempty"`
	ButtonTextRu *string `gorm:"type:text" json:"button_text_ru,omitempty"`

	// Legacy unsuffixed fields kept as the last fallback for old rows.
	Title      *string `gorm:"type:text" json:"title,omitempty"`
	ButtonText *string `gorm:"type:text" json:"button_text,omitempty"`

	Logos []PartnerLogo `gorm:"constraint:OnDelete:CASCADE;" json:"logos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Partner) LocalizedBases() []string {
	return []string{"title", "button_text"}
}

func (p *Partner) LocalizedField(base string) i18n.Variants {
	switch base {
	case "title":
		return i18n.Variants{En: p.TitleEn, Az: p.TitleAz, Ru: p.TitleRu, Legacy: p.Title}
	case "button_text":
		return i18n.Variants{En: p.ButtonTextEn, Az: p.ButtonTextAz, Ru: p.ButtonTextRu, Legacy: p.ButtonText}
	}
	return i18n.Variants{}
}

type PartnerLogo struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	PartnerID uint   `gorm:"not null;index:idx_partner_logos_partner_order,priority:1" json:"partner_id"`
	ImageURL  string `gorm:"type:text;not null" json:"image_url"`
	Order     int    `gorm:"not null;default:0;index:idx_partner_logos_partner_order,priority:2" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
