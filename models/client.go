package models

import "time"

type Architect struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `json:"email,omitempty"`
	Clients   []Client  `gorm:"foreignKey:ArchitectID" json:"clients,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Client struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Email       string     `json:"email,omitempty"`
	ArchitectID *uint      `json:"architect_id"`
	Architect   *Architect `gorm:"foreignKey:ArchitectID" json:"architect,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
