// Package models содержит доменные структуры поездок, под-ресурсов поездки,
// каталога направлений и пользователей, а также вспомогательные типы
// для приёма данных из JSON-запросов (Dummy*) и частичных обновлений (Patch*).
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// Хэш пароля наружу не сериализуется.
type User struct {
	UID            string    `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"`
	Role           string    `json:"role"` // admin или user
	Name           string    `json:"name,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	IsActive       bool      `json:"-"` // false после мягкого удаления аккаунта
	CreatedAt      time.Time `json:"created_at"`
}

// PatchProfile — частичное обновление профиля пользователя.
// Поле Password принимается только для того, чтобы обработчик мог явно
// отклонить попытку смены пароля этим маршрутом; Apply его игнорирует.
type PatchProfile struct {
	Name           *string `json:"name"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profile_picture"`
	Password       *string `json:"password"`
}

// Apply переносит заполненные поля патча в профиль пользователя.
func (p PatchProfile) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = *p.ProfilePicture
	}
}
