package entity

// Address is an address sub-record owned by a user.
// Ordering among a user's addresses is not significant.
type Address struct {
	ID           uint   `gorm:"primaryKey"`
	PostalCode   int    `gorm:"not null"`
	Street       string `gorm:"size:255;not null"`
	StreetNumber int    `gorm:"not null"`
	Complement   string `gorm:"size:255"`
	Neighborhood string `gorm:"size:255"`
	City         string `gorm:"size:255"`
	State        string `gorm:"size:64"`
	UserID       uint   `gorm:"index;not null"`
}
