package models

type Doctor struct {
	ID        string `json:"id" gorm:"primaryKey"`
	Name      string `json:"name"`
	Specialty string `json:"specialty" gorm:"index"`
	Active    bool   `json:"active"`
}
