package models

type Video struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	Filepath    string `json:"filepath"`
}

func (Video) TableName() string {
	return "videos"
}
