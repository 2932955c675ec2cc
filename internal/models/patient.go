package models

import "time"

type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RecordNumber string     `gorm:"size:20;uniqueIndex" json:"record_number"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	CPF          string     `gorm:"size:11;uniqueIndex;not null" json:"cpf"`
	Phone        string     `gorm:"size:20" json:"phone"`
	Email        string     `gorm:"size:100" json:"email"`
	BirthDate    *time.Time `gorm:"type:date" json:"birth_date"`
	Active       bool       `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
