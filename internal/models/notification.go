package models

// Notification records a lifecycle event awaiting acknowledgment by its
// recipient. Created only by the lifecycle manager, destroyed only by
// explicit dismissal.
type Notification struct {
	BaseModel
	Recipient   string    `gorm:"not null;index" json:"-"`
	Sender      string    `gorm:"not null" json:"sender"`
	Operation   Operation `gorm:"type:varchar(32);not null" json:"operation"`
	ProjectName string    `gorm:"not null" json:"project"`
}
