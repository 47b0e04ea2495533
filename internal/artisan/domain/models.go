// Package domain contains artisan profile types.
package domain

// DefaultSustainabilityScore is assigned to freshly created profiles until
// the artisan fills in real details.
const DefaultSustainabilityScore = 90

// Profile holds the artisan-specific half of an artisan account.
type Profile struct {
	UserID              int64  `gorm:"column:user_id;primaryKey" json:"userId"`
	Bio                 string `gorm:"type:text" json:"bio"`
	ShortDescription    string `gorm:"type:text" json:"shortDescription"`
	Location            string `gorm:"type:text" json:"location"`
	Category            string `gorm:"type:text" json:"category"`
	SustainabilityScore int    `gorm:"default:90" json:"sustainabilityScore"`
	PhotoURL            string `gorm:"column:photo_url;type:text" json:"photoUrl"`
	VideoURL            string `gorm:"column:video_url;type:text" json:"videoUrl"`
}

// TableName sets the database table name.
func (Profile) TableName() string { return "artisan_profiles" }

// Summary is the catalog listing shape: user fields joined with the profile.
type Summary struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Location            string `json:"location"`
	Image               string `json:"image"`
	VideoURL            string `gorm:"column:video_url" json:"videoUrl"`
	Category            string `json:"category"`
	SustainabilityScore int    `json:"sustainabilityScore"`
	ShortDescription    string `json:"shortDescription"`
}

// Detail adds the long-form bio to the summary shape.
type Detail struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Bio                 string `json:"bio"`
	ShortDescription    string `json:"shortDescription"`
	Location            string `json:"location"`
	Category            string `json:"category"`
	SustainabilityScore int    `json:"sustainabilityScore"`
	Image               string `json:"image"`
	VideoURL            string `gorm:"column:video_url" json:"videoUrl"`
}
