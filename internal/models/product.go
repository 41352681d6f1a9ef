package models

import "time"

// Product represents a catalog product as stored in the database.
type Product struct {
	ID            uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string    `json:"name" gorm:"type:varchar(100);not null"`
	Description   string    `json:"description" gorm:"type:varchar(1000);not null"`
	Price         float64   `json:"price" gorm:"type:decimal(10,2);not null"`
	Category      string    `json:"category" gorm:"type:varchar(255);not null;index"`
	StockQuantity int       `json:"stockQuantity" gorm:"not null"`
	ImageURL      string    `json:"imageUrl" gorm:"type:varchar(500);not null"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

// ProductDTO is the wire representation of a Product. The ID is ignored on
// create (the store assigns it) and always populated on responses.
// Price and StockQuantity are pointers so that "absent" and "zero" are
// distinguishable when validating requests.
type ProductDTO struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name" validate:"required,min=2,max=100"`
	Description   string   `json:"description" validate:"required,min=10,max=1000"`
	Price         *float64 `json:"price" validate:"required,gt=0,decimal82"`
	Category      string   `json:"category" validate:"required"`
	StockQuantity *int     `json:"stockQuantity" validate:"required,gte=0,lte=100000"`
	ImageURL      string   `json:"imageUrl" validate:"required,max=500"`
}

// ProductPage is a single page of products plus the pagination metadata the
// frontend consumes.
type ProductPage struct {
	Content       []ProductDTO `json:"content"`
	TotalElements int64        `json:"totalElements"`
	TotalPages    int          `json:"totalPages"`
	Number        int          `json:"number"`
	Size          int          `json:"size"`
}
