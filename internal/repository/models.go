package repository

import (
	"time"

	"github.com/minimalism94/notification-svc/internal/domain"
)

// PreferenceModel is the persistence model for the notification_preferences
// table. The unique index on user_id enforces the one-preference-per-user
// invariant; the service layer deliberately does no locking of its own.
type PreferenceModel struct {
	ID          string         `gorm:"type:uuid;primaryKey"`
	UserID      string         `gorm:"type:uuid;not null;uniqueIndex:idx_preferences_user_id"`
	Channel     domain.Channel `gorm:"type:varchar(10);not null"`
	Enabled     bool           `gorm:"not null"`
	ContactInfo string         `gorm:"type:varchar(255)"`
	CreatedOn   time.Time      `gorm:"not null"`
	UpdatedOn   time.Time      `gorm:"not null"`
}

func (PreferenceModel) TableName() string {
	return "notification_preferences"
}

// NotificationModel is the persistence model for the notifications table.
type NotificationModel struct {
	ID        string         `gorm:"type:uuid;primaryKey"`
	UserID    string         `gorm:"type:uuid;not null;index:idx_notifications_user_id"`
	Channel   domain.Channel `gorm:"type:varchar(10);not null"`
	Subject   string         `gorm:"type:varchar(255)"`
	Body      string         `gorm:"type:text"`
	Status    domain.Status  `gorm:"type:varchar(20);not null"`
	Deleted   bool           `gorm:"not null;default:false"`
	CreatedOn time.Time      `gorm:"not null"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func preferenceModelFromDomain(p *domain.Preference) *PreferenceModel {
	if p == nil {
		return nil
	}

	return &PreferenceModel{
		ID:          p.ID,
		UserID:      p.UserID,
		Channel:     p.Channel,
		Enabled:     p.Enabled,
		ContactInfo: p.ContactInfo,
		CreatedOn:   p.CreatedOn,
		UpdatedOn:   p.UpdatedOn,
	}
}

func preferenceModelToDomain(m *PreferenceModel) *domain.Preference {
	if m == nil {
		return nil
	}

	return &domain.Preference{
		ID:          m.ID,
		UserID:      m.UserID,
		Channel:     m.Channel,
		Enabled:     m.Enabled,
		ContactInfo: m.ContactInfo,
		CreatedOn:   m.CreatedOn,
		UpdatedOn:   m.UpdatedOn,
	}
}

func notificationModelFromDomain(n *domain.Notification) *NotificationModel {
	if n == nil {
		return nil
	}

	return &NotificationModel{
		ID:        n.ID,
		UserID:    n.UserID,
		Channel:   n.Channel,
		Subject:   n.Subject,
		Body:      n.Body,
		Status:    n.Status,
		Deleted:   n.Deleted,
		CreatedOn: n.CreatedOn,
	}
}

func notificationModelToDomain(m *NotificationModel) *domain.Notification {
	if m == nil {
		return nil
	}

	return &domain.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Channel:   m.Channel,
		Subject:   m.Subject,
		Body:      m.Body,
		Status:    m.Status,
		Deleted:   m.Deleted,
		CreatedOn: m.CreatedOn,
	}
}
