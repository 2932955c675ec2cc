package models

import "time"

type Dentist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	CRO       string `gorm:"size:20;uniqueIndex;not null" json:"cro"`
	Email     string `gorm:"size:100" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
	Specialty string `gorm:"size:100" json:"specialty"`
	Active    bool   `gorm:"not null;default:true" json:"active"`

	WorkingHours []WorkingHours `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"working_hours,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
