package db_models

type Account struct {
	BaseModel
	Name         string `json:"display_name"`
	Email        string `gorm:"unique" json:"email"`
	PasswordHash string `json:"-"`
}
