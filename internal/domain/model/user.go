//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// Workspace is a tenant boundary. Every CRM record and staff account
// belongs to exactly one workspace.
type Workspace struct {
	ID        string    `json:"id"         db:"id"`
	Name      string    `json:"name"       db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// User is an internal staff account. External parties never get a User row;
// they are represented only by derived stable ids.
type User struct {
	ID          string    `json:"id"                   db:"id"`
	WorkspaceID string    `json:"workspace_id"         db:"workspace_id"`
	Email       string    `json:"email"                db:"email"`
	DisplayName string    `json:"display_name"         db:"display_name"`
	Role        string    `json:"role"                 db:"role"`
	AvatarURL   *string   `json:"avatar_url,omitempty" db:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"           db:"created_at"`
}
