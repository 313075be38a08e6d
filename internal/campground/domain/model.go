// Package domain contains the campground aggregate: park identity,
// sites, and the staff-authored policy configuration embedded on the
// park record.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/campreserv/keepr/internal/cancellation"
	"github.com/campreserv/keepr/internal/deposit"
)

type Campground struct {
	ID          snowflake.ID `json:"id" gorm:"primaryKey"`
	Name        string       `json:"name" gorm:"type:text;not null"`
	Slug        string       `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Timezone    string       `json:"timezone" gorm:"type:text;not null;default:'UTC'"`
	RequiresTax bool         `json:"requires_tax" gorm:"not null;default:false"`

	Deposit            deposit.Config      `json:"deposit" gorm:"embedded"`
	CancellationPolicy cancellation.Policy `json:"cancellation_policy" gorm:"embedded"`

	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

func (Campground) TableName() string { return "campgrounds" }

type SiteClass struct {
	ID           snowflake.ID `json:"id" gorm:"primaryKey"`
	CampgroundID snowflake.ID `json:"campground_id" gorm:"not null;index"`
	Name         string       `json:"name" gorm:"type:text;not null"`
	CreatedAt    time.Time    `json:"created_at" gorm:"not null"`
}

func (SiteClass) TableName() string { return "site_classes" }

type Site struct {
	ID           snowflake.ID `json:"id" gorm:"primaryKey"`
	CampgroundID snowflake.ID `json:"campground_id" gorm:"not null;index"`
	SiteClassID  snowflake.ID `json:"site_class_id" gorm:"not null;index"`
	Name         string       `json:"name" gorm:"type:text;not null"`
	Active       bool         `json:"active" gorm:"not null;default:true"`
	CreatedAt    time.Time    `json:"created_at" gorm:"not null"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"not null"`
}

func (Site) TableName() string { return "sites" }
