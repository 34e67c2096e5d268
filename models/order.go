package models

import "time"

type Order struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Reference string    `gorm:"uniqueIndex;not null" json:"reference"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Products  []Product `gorm:"many2many:order_products" json:"products"`
	CreatedAt time.Time `json:"created_at"`
}
