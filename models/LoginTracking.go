package models

import (
	"time"

	"gorm.io/gorm"
)

// LoginTracking is the login audit trail. Failed attempts are recorded too,
// so the lockout counter can be reviewed after the fact.
type LoginTracking struct {
	gorm.Model
	UserID     uint      `json:"user_id"`
	IPAddress  string    `json:"ip_address"`
	Device     string    `json:"device"`
	Successful bool      `json:"successful" gorm:"default:true"`
	Timestamp  time.Time `json:"timestamp"`
	IsDeleted  bool      `gorm:"default:false"`
}
