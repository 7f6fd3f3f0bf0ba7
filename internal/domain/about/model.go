package about

import (
	"time"

	"sda-backend/internal/i18n"
)

type About struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ExperienceEn *string `gorm:"type:text" json:"experience_en,omitempty"`
	ExperienceAz *string `gorm:"type:text" json:"experience_az,omitempty"`
	ExperienceRu *string `gorm:"type:text" json:"experience_ru,omitempty"`

	ProjectCountEn *string `gorm:"type:text" json:"project_count_en,omitempty"`
	ProjectCountAz *string `gorm:"type:text" json:"project_count_az,omitempty"`
	ProjectCountRu *string `gorm:"type:text" json:"project_count_ru,omitempty"`

	MembersEn *string `gorm:"type:text" json:"members_en,omitempty"`
	MembersAz *string `gorm:"type:text" json:"members_az,omitempty"`
	MembersRu *string `gorm:"type:text" json:"members_ru,omitempty"`

	// Legacy unsuffixed fields kept as the last fallback for old rows.
	Experience   *string `gorm:"type:text" json:"experience,omitempty"`
	ProjectCount *string `gorm:"type:text" json:"project_count,omitempty"`
	Members      *string `gorm:"type:text" json:"members,omitempty"`

	Logos []AboutLogo `gorm:"constraint:OnDelete:CASCADE;" json:"logos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *About) LocalizedBases() []string {
	return []string{"experience", "project_count", "members"}
}

func (a *About) LocalizedField(base string) i18n.Variants {
	switch base {
	case "experience":
		return i18n.Variants{En: a.ExperienceEn, Az: a.ExperienceAz, Ru: a.ExperienceRu, Legacy: a.Experience}
	case "project_count":
		return i18n.Variants{En: a.ProjectCountEn, Az: a.ProjectCountAz, Ru: a.ProjectCountRu, Legacy: a.ProjectCount}
	case "members":
		return i18n.Variants{En: a.MembersEn, Az: a.MembersAz, Ru: a.MembersRu, Legacy: a.Members}
	}
	return i18n.Variants{}
}

type AboutLogo struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	AboutID  uint   `gorm:"not null;index:idx_about_logos_about_order,priority:1" json:"about_id"`
	ImageURL string `gorm:"type:text;not null" json:"image_url"`
	Order    int    `gorm:"not null;default:0;index:idx_about_logos_about_order,priority:2" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
