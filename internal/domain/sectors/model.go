package sectors

import "time"

type PropertySector struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"type:text;not null;uniqueIndex" json:"title"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	Order       int     `gorm:"not null;default:0;index" json:"order"`

	Inns []SectorInn `gorm:"constraint:OnDelete:CASCADE;" json:"inns,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SectorInn struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	PropertySectorID uint    `gorm:"not null;uniqueIndex:uq_sector_inns_sector_title,priority:1;index:idx_sector_inns_sector_order,priority:1" json:"property_sector_id"`
	Title            string  `gorm:"type:text;not null;uniqueIndex:uq_sector_inns_sector_title,priority:2" json:"title"`
	Description      *string `gorm:"type:text" json:"description,omitempty"`
	Order            int     `gorm:"not null;default:0;index:idx_sector_inns_sector_order,priority:2" json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
