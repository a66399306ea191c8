package models

// Team represents a racing team. Teams are created implicitly by result ingestion
// or explicitly through team management.
type Team struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
