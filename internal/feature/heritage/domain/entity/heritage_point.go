// Package entity defines the domain entities for the heritage feature.
package entity

// HeritagePoint represents a named, geolocated record owned by one user.
// Column names follow the existing `patrimoine` table. Latitude and longitude
// are stored as strings normalized to 6 fractional digits so that textually
// equal coordinates collide on the composite unique index.
type HeritagePoint struct {
	// ID is the unique identifier for the point.
	ID uint `gorm:"column:id_patrimoine;primaryKey"`

	// Name is the display name of the heritage point.
	Name string `gorm:"column:nom_patrimoine;size:255;not null"`

	// Latitude, normalized to 6 decimals ("12.345678").
	Latitude string `gorm:"column:latitude;size:32;not null;uniqueIndex:uq_patrimoine_coords"`

	// Longitude, normalized to 6 decimals.
	Longitude string `gorm:"column:longitude;size:32;not null;uniqueIndex:uq_patrimoine_coords"`

	// UserID references the owning user.
	// The coordinate uniqueness is global, not per owner.
	UserID uint `gorm:"column:id_user;not null"`
}

// TableName maps the entity onto the legacy table name.
func (HeritagePoint) TableName() string { return "patrimoine" }

// PointWithOwner is the listing projection: a point joined with its owner's
// display name.
type PointWithOwner struct {
	Name      string `gorm:"column:nom_patrimoine"`
	Latitude  string `gorm:"column:latitude"`
	Longitude string `gorm:"column:longitude"`
	OwnerName string `gorm:"column:nom_utilisateur"`
}
