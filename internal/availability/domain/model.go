// Package domain defines maintenance blocks and the availability check
// contract.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// MaintenanceBlock takes a site out of inventory for a date range,
// inclusive of both ends.
type MaintenanceBlock struct {
	ID        snowflake.ID `json:"id" gorm:"primaryKey"`
	SiteID    snowflake.ID `json:"site_id" gorm:"not null;index"`
	StartDate time.Time    `json:"start_date" gorm:"not null"`
	EndDate   time.Time    `json:"end_date" gorm:"not null"`
	Reason    string       `json:"reason" gorm:"type:text"`
	CreatedAt time.Time    `json:"created_at" gorm:"not null"`
}

func (MaintenanceBlock) TableName() string { return "maintenance_blocks" }

// SiteAvailability is one site's verdict for the requested range.
type SiteAvailability struct {
	SiteID    snowflake.ID `json:"site_id"`
	SiteName  string       `json:"site_name"`
	Available bool         `json:"available"`
	Reason    string       `json:"reason,omitempty"`
}

// CheckResult lists every active site with its verdict.
type CheckResult struct {
	Arrival   time.Time          `json:"arrival"`
	Departure time.Time          `json:"departure"`
	Sites     []SiteAvailability `json:"sites"`
	Available int                `json:"available_count"`
}
