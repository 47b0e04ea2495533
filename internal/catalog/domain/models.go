// Package domain contains product catalog types.
package domain

// Fixed split applied to every product price, computed on read and never
// stored: 70% artisan, 10% platform, 20% logistics.
const (
	ArtisanShareRate = 0.7
	PlatformFeeRate  = 0.1
	LogisticsRate    = 0.2
)

// Product is a single listed craft item.
type Product struct {
	ID                  int64   `gorm:"primaryKey" json:"id"`
	Name                string  `gorm:"type:text;not null" json:"name"`
	Description         string  `gorm:"type:text" json:"description"`
	Price               float64 `gorm:"not null" json:"price"`
	Category            string  `gorm:"type:text" json:"category"`
	ArtisanID           int64   `gorm:"column:artisan_id;index" json:"artisan_id"`
	ImageURL            string  `gorm:"column:image_url;type:text" json:"image_url"`
	RawMaterialSource   string  `gorm:"type:text" json:"raw_material_source"`
	TimeToCreate        string  `gorm:"type:text" json:"time_to_create"`
	SustainabilityScore int     `json:"sustainability_score"`
}

// TableName sets the database table name.
func (Product) TableName() string { return "products" }

// PriceBreakdown is the fixed 70/10/20 split of a product price.
type PriceBreakdown struct {
	ArtisanShare float64 `json:"artisanShare"`
	PlatformFee  float64 `json:"platformFee"`
	Logistics    float64 `json:"logistics"`
}

// Breakdown computes the price split for the product.
func (p Product) Breakdown() PriceBreakdown {
	return PriceBreakdown{
		ArtisanShare: p.Price * ArtisanShareRate,
		PlatformFee:  p.Price * PlatformFeeRate,
		Logistics:    p.Price * LogisticsRate,
	}
}

// Summary is a catalog listing row: product fields plus the artisan's name.
type Summary struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	Price               float64 `json:"price"`
	Category            string  `json:"category"`
	ArtisanID           int64   `gorm:"column:artisan_id" json:"artisan_id"`
	Image               string  `json:"image"`
	RawMaterialSource   string  `json:"rawMaterialSource"`
	TimeToCreate        string  `json:"timeToCreate"`
	SustainabilityScore int     `json:"sustainabilityScore"`
	ArtisanName         string  `json:"artisanName"`
}

// Detail is the product page shape: the summary joined with provenance
// fields from the artisan's profile, the computed price split, and the
// traceability QR image.
type Detail struct {
	Summary
	Location   string         `json:"location"`
	VideoURL   string         `gorm:"column:video_url" json:"videoUrl"`
	ArtisanBio string         `json:"artisanBio"`
	Breakdown  PriceBreakdown `gorm:"-" json:"breakdown"`
	QRCode     string         `gorm:"-" json:"qrCode"`
}
