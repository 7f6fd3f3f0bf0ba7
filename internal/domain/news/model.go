package news

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"sda-backend/internal/i18n"
)

// TagList stores news tags as a JSON-encoded text column so the same model
// works on PostgreSQL and the SQLite test database.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		t = TagList{}
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *TagList) Scan(value any) error {
	if value == nil {
		*t = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	}
	return fmt.Errorf("unsupported tag list source type %T", value)
}

type News struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TitleEn *string `gorm:"type:text" json:"title_en,omitempty"`
	TitleAz *string `gorm:"type:text" json:"title_az,omitempty"`
	TitleRu *string `gorm:"type:text" json:"title_ru,omitempty"`

	SummaryEn *string `gorm:"type:text" json:"summary_en,omitempty"`
	SummaryAz *string `gorm:"type:text" json:"summary_az,omitempty"`
	SummaryRu *string `gorm:"type:text" json:"summary_ru,omitempty"`

	// Legacy unsuffixed fields kept as the last fallback for old rows.
	Title   string  `gorm:"type:text;not null" json:"title"`
	Summary *string `gorm:"type:text" json:"summary,omitempty"`

	PhotoURL *string `gorm:"type:text" json:"photo_url,omitempty"`
	Tags     TagList `gorm:"type:text" json:"tags"`

	Sections []NewsSection `gorm:"constraint:OnDelete:CASCADE;" json:"sections,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (n *News) LocalizedBases() []string {
	return []string{"title", "summary"}
}

func (n *News) LocalizedField(base string) i18n.Variants {
	switch base {
	case "title":
		return i18n.Variants{En: n.TitleEn, Az: n.TitleAz, Ru: n.TitleRu, Legacy: &n.Title}
	case "summary":
		return i18n.Variants{En: n.SummaryEn, Az: n.SummaryAz, Ru: n.SummaryRu, Legacy: n.Summary}
	}
	return i18n.Variants{}
}

type NewsSection struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	NewsID   uint    `gorm:"not null;index:idx_news_sections_news_order,priority:1" json:"news_id"`
	Order    int     `gorm:"not null;default:0;index:idx_news_sections_news_order,priority:2" json:"order"`
	Heading  *string `gorm:"type:text" json:"heading,omitempty"`
	Content  *string `gorm:"type:text" json:"content,omitempty"`
	ImageURL *string `gorm:"type:text" json:"image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
