package database

import "ripple/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Profile{},
		&models.SocialLink{},
		&models.Follow{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	}
}
