package model

import "gorm.io/gorm"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	gorm.Model
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Password  string `json:"-" gorm:"not null"`
	FullName  string `json:"full_name"`
	Role      Role   `json:"role" gorm:"type:varchar(20);default:'user';not null"`
	AvatarURL string `json:"avatar_url"`

	// Relations
	Blogs []Blog  `json:"-" gorm:"foreignKey:AuthorID"`
	Media []Media `json:"-" gorm:"foreignKey:UploadedBy"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// GetPublicProfile is the session projection returned to the client. The
// password hash never leaves the server.
func (u *User) GetPublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":         u.ID,
		"email":      u.Email,
		"full_name":  u.FullName,
		"role":       u.Role,
		"avatar_url": u.AvatarURL,
	}
}

// AuthorProjection is the restricted author view embedded in blog responses.
type AuthorProjection struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

func (u *User) AsAuthor() AuthorProjection {
	return AuthorProjection{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
	}
}
