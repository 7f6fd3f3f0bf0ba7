package team

import (
	"time"

	"sda-backend/internal/i18n"
)

type TeamMember struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullNameEn *string `gorm:"type:text" json:"full_name_en,omitempty"`
	FullNameAz *string `gorm:"type:text" json:"full_name_az,omitempty"`
	FullNameRu *string `gorm:"type:text" json:"full_name_ru,omitempty"`

	RoleEn *string `gorm:"type:text" json:"role_en,omitempty"`
	RoleAz *string `gorm:"type:text" json:"role_az,omitempty"`
	RoleRu *string `gorm:"type:text" json:"role_ru,omitempty"`

	// Legacy unsuffixed fields kept as the last fallback for old rows.
	FullName *string `gorm:"type:text;index" json:"full_name,omitempty"`
	Role     *string `gorm:"type:text" json:"role,omitempty"`

	PhotoURL *string `gorm:"type:text" json:"photo_url,omitempty"`
	Order    int     `gorm:"not null;default:0;index" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *TeamMember) LocalizedBases() []string {
	return []string{"full_name", "role"}
}

func (m *TeamMember) LocalizedField(base string) i18n.Variants {
	switch base {
	case "full_name":
		return i18n.Variants{En: m.FullNameEn, Az: m.FullNameAz, Ru: m.FullNameRu, Legacy: m.FullName}
	case "role":
		return i18n.Variants{En: m.RoleEn, Az: m.RoleAz, Ru: m.RoleRu, Legacy: m.Role}
	}
	return i18n.Variants{}
}

type TeamSection struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Title      string  `gorm:"type:text;not null" json:"title"`
	ButtonText *string `gorm:"type:text" json:"button_text,omitempty"`

	Items []TeamSectionItem `gorm:"constraint:OnDelete:CASCADE;" json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TeamSectionItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	TeamSectionID uint    `gorm:"not null;index:idx_team_section_items_section_order,priority:1" json:"team_section_id"`
	Name          string  `gorm:"type:text;not null" json:"name"`
	Description   *string `gorm:"type:text" json:"description,omitempty"`
	PhotoURL      *string `gorm:"type:text" json:"photo_url,omitempty"`
	ButtonText    *string `gorm:"type:text" json:"button_text,omitempty"`
	Order         int     `gorm:"not null;default:0;index:idx_team_section_items_section_order,priority:2" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
