package models

import "time"

// Chat is the durable row for a chat transcript. The full nested aggregate
// lives in ChatData as one opaque JSON document.
type Chat struct {
	ID           string    `gorm:"type:varchar(255);primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	LastModified time.Time `json:"last_modified"`
	ChatData     string    `gorm:"type:text;not null" json:"chat_data"`
}
