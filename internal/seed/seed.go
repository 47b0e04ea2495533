// Package seed installs the sample catalog on first run: three
// Visakhapatnam artisans and four products, so the storefront renders
// something before any real signups.
package seed

import (
	"context"
	"errors"

	artisandomain "github.com/localvocal/localvocal/internal/artisan/domain"
	authdomain "github.com/localvocal/localvocal/internal/auth/domain"
	"github.com/localvocal/localvocal/internal/auth/password"
	catalogdomain "github.com/localvocal/localvocal/internal/catalog/domain"
	"gorm.io/gorm"
)

// Every sample account shares this password for local exploration.
const samplePassword = "password123"

type sampleArtisan struct {
	user     authdomain.User
	profile  artisandomain.Profile
	products []catalogdomain.Product
}

func sampleArtisans() []sampleArtisan {
	return []sampleArtisan{
		{
			user: authdomain.User{ID: 1, Name: "Ravi Kumar", Email: "ravi@artisan.com", Role: authdomain.RoleArtisan},
			profile: artisandomain.Profile{
				UserID:              1,
				Bio:                 "Master artisan from Etikoppaka with 20 years of experience. Ravi specializes in the ancient art of lacquerware, using natural dyes derived from seeds, bark, and roots to create safe and beautiful toys.",
				ShortDescription:    "Preserving the 400-year-old lacquerware tradition of Etikoppaka with 100% natural dyes.",
				Location:            "Etikoppaka, Visakhapatnam",
				Category:            "Etikoppaka Toys",
				SustainabilityScore: 98,
				PhotoURL:            "https://images.unsplash.com/photo-1566753323558-f4e0952af115?q=80&w=400&auto=format&fit=crop",
				VideoURL:            "https://www.youtube.com/embed/f-XWvC1uLpE",
			},
			products: []catalogdomain.Product{
				{
					ID:                  1,
					Name:                "Etikoppaka Wooden Elephant",
					Description:         "Hand-painted traditional wooden elephant using natural dyes. A symbol of strength and wisdom, crafted using the 400-year-old lacquerware technique.",
					Price:               1200,
					Category:            "Etikoppaka Toys",
					ArtisanID:           1,
					ImageURL:            "https://images.unsplash.com/photo-1581337204873-ef36aa186caa?q=80&w=800&auto=format&fit=crop",
					RawMaterialSource:   "Ankudu Wood (Wrightia tinctoria)",
					TimeToCreate:        "4 days",
					SustainabilityScore: 98,
				},
				{
					ID:                  2,
					Name:                "Traditional Lattu (Spinning Top)",
					Description:         "Classic spinning top, a favorite childhood toy made with sustainable wood and vibrant natural colors. Perfectly balanced for long spins.",
					Price:               450,
					Category:            "Etikoppaka Toys",
					ArtisanID:           1,
					ImageURL:            "https://images.unsplash.com/photo-1596461404969-9ae70f2830c1?q=80&w=800&auto=format&fit=crop",
					RawMaterialSource:   "Ankudu Wood",
					TimeToCreate:        "2 days",
					SustainabilityScore: 99,
				},
			},
		},
		{
			user: authdomain.User{ID: 2, Name: "Lakshmi Devi", Email: "lakshmi@artisan.com", Role: authdomain.RoleArtisan},
			profile: artisandomain.Profile{
				UserID:              2,
				Bio:                 "Lakshmi is a third-generation Kalamkari artist. Her intricate designs tell stories from Indian mythology and local folklore, using only natural vegetable dyes on hand-woven cotton.",
				ShortDescription:    "Creating intricate hand-painted stories on fabric using ancient vegetable dye techniques.",
				Location:            "Visakhapatnam City",
				Category:            "Kalamkari",
				SustainabilityScore: 96,
				PhotoURL:            "https://images.unsplash.com/photo-1566733971017-f6a46e832e95?q=80&w=400&auto=format&fit=crop",
				VideoURL:            "https://www.youtube.com/embed/Xm_P_i-5Xy4",
			},
			products: []catalogdomain.Product{
				{
					ID:                  3,
					Name:                "Hand-painted Kalamkari Saree",
					Description:         "Exquisite cotton saree featuring hand-painted floral motifs using vegetable dyes. Each piece takes weeks to complete, involving 23 rigorous steps of washing and painting.",
					Price:               4500,
					Category:            "Handloom Sarees",
					ArtisanID:           2,
					ImageURL:            "https://images.unsplash.com/photo-1610030469983-98e550d6193c?q=80&w=800&auto=format&fit=crop",
					RawMaterialSource:   "Organic Cotton & Natural Dyes",
					TimeToCreate:        "15 days",
					SustainabilityScore: 94,
				},
			},
		},
		{
			user: authdomain.User{ID: 3, Name: "Srinivas Rao", Email: "srinivas@artisan.com", Role: authdomain.RoleArtisan},
			profile: artisandomain.Profile{
				UserID:              3,
				Bio:                 "Srinivas works with tribal communities in the Araku Valley to bring their unique bamboo art forms to a wider audience. He focuses on modern utility items made with traditional weaving techniques.",
				ShortDescription:    "Empowering Araku tribal communities through sustainable bamboo craftsmanship and modern design.",
				Location:            "Araku Valley, Visakhapatnam",
				Category:            "Tribal Art",
				SustainabilityScore: 100,
				PhotoURL:            "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&q=80&w=400",
				VideoURL:            "https://www.youtube.com/embed/5U_O89p6X3A",
			},
			products: []catalogdomain.Product{
				{
					ID:                  4,
					Name:                "Tribal Bamboo Lamp",
					Description:         "Hand-crafted lamp made from locally sourced bamboo, reflecting the simple elegance of tribal life in Araku. Provides a warm, diffused glow.",
					Price:               1500,
					Category:            "Tribal Art",
					ArtisanID:           3,
					ImageURL:            "https://images.unsplash.com/photo-1513506003901-1e6a229e2d15?q=80&w=800&auto=format&fit=crop",
					RawMaterialSource:   "Wild Bamboo from Araku",
					TimeToCreate:        "3 days",
					SustainabilityScore: 100,
				},
			},
		},
	}
}

// EnsureSampleData inserts the sample artisans and products when the users
// table is empty. The whole fixture goes in one transaction.
func EnsureSampleData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()

	var count int64
	if err := db.WithContext(ctx).Model(&authdomain.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := password.Hash(samplePassword)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, artisan := range sampleArtisans() {
			user := artisan.user
			user.PasswordHash = hashed
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			profile := artisan.profile
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
			for _, product := range artisan.products {
				if err := tx.Create(&product).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
