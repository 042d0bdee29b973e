package models

import (
	"time"

	"gorm.io/datatypes"
)

// Asset is the durable row for an agent or material definition. The
// type-specific columns are nullable and ignored for the other kind.
type Asset struct {
	ID            string         `gorm:"type:varchar(255);primaryKey" json:"id"`
	Name          string         `gorm:"type:varchar(255)" json:"name"`
	Version       string         `gorm:"type:varchar(50);default:0.0.1" json:"version"`
	Usage         string         `gorm:"type:text" json:"usage"`
	UsageExamples datatypes.JSON `gorm:"type:json" json:"usage_examples"`
	DefinedIn     string         `gorm:"type:varchar(50)" json:"defined_in"`
	Type          string         `gorm:"type:varchar(50);index" json:"type"`
	DefaultStatus string         `gorm:"type:varchar(50);default:enabled" json:"default_status"`
	Status        string         `gorm:"type:varchar(50);default:enabled" json:"status"`
	Override      bool           `gorm:"type:boolean;default:false" json:"override"`
	ContentType   string         `gorm:"type:varchar(50)" json:"content_type"`
	Content       string         `gorm:"type:text" json:"content"`
	System        *string        `gorm:"type:text" json:"system"`
	GPTMode       *string        `gorm:"type:varchar(50)" json:"gpt_mode"`
	ExecutionMode *string        `gorm:"type:varchar(255)" json:"execution_mode"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}
