// Package entity defines the domain entities for the auth feature.
package entity

// User represents a registered account.
// Column names follow the existing `utilisateur` table, which is shared with
// other tools and cannot be renamed. The schema carries no timestamps and no
// uniqueness on the display name; login resolves the first match.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"column:id_user;primaryKey"`

	// Name is the display name the user registers and logs in with.
	Name string `gorm:"column:nom_utilisateur;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This must never store plaintext passwords.
	Password string `gorm:"column:mot_de_passe;size:255;not null"`
}

// TableName maps the entity onto the legacy table name.
func (User) TableName() string { return "utilisateur" }
