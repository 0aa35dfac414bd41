package model

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"size:191;uniqueIndex" json:"username"`
	Password string `gorm:"size:255" json:"-"` // bcrypt；旧数据可能是明文或 werkzeug 哈希
}

func (User) TableName() string {
	return "users"
}
