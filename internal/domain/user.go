package domain

// User is an account that can mark catalog entries as favorites.
// Password is kept as submitted and never serialized.
type User struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"size:120;not null;uniqueIndex"`
	Password string `json:"-" gorm:"size:250;not null"`
	IsActive bool   `json:"-" gorm:"not null"`
	Name     string `json:"name" gorm:"size:120;not null"`
}

func (User) TableName() string {
	return "users"
}
