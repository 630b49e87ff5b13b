package database

import (
	"errors"
	"log"

	"gamestore/backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed loads reference data and a sample catalog into an empty or partially
// seeded database. Every insert is guarded by a lookup, so running it on
// every boot is safe.
func Seed(db *gorm.DB) error {
	if err := seedRoles(db); err != nil {
		return err
	}
	if err := seedAdminUser(db); err != nil {
		return err
	}
	if err := seedCatalog(db); err != nil {
		return err
	}
	log.Println("Seed data loaded.")
	return nil
}

func seedRoles(db *gorm.DB) error {
	for _, name := range []string{"User", "Admin"} {
		var role models.Role
		err := db.Where("name = ?", name).First(&role).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&models.Role{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedAdminUser bootstraps a development admin account so the admin surface
// is reachable on a fresh database.
func seedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("LOWER(email) = ?", "admin@gamestore.dev").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var adminRole models.Role
	if err := db.Where("name = ?", "Admin").First(&adminRole).Error; err != nil {
		return err
	}

	admin := models.User{
		FirstName:    "Store",
		LastName:     "Admin",
		Email:        "admin@gamestore.dev",
		PasswordHash: string(hash),
		IsActive:     true,
		Roles:        []*models.Role{&adminRole},
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Seeded development admin account admin@gamestore.dev")
	return nil
}

func seedCatalog(db *gorm.DB) error {
	platforms := []string{"PC", "PS5", "Xbox", "Switch"}
	for _, name := range platforms {
		var count int64
		if err := db.Model(&models.Platform{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&models.Platform{Name: name}).Error; err != nil {
				return err
			}
		}
	}

	genres := []string{
		"Action", "RPG", "Indie", "Sports", "Shooter", "Adventure",
		"Strategy", "Racing", "Fighting", "Platformer", "Party",
		"Family", "Simulation", "Co-op",
	}
	for _, name := range genres {
		var count int64
		if err := db.Model(&models.Genre{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&models.Genre{Name: name}).Error; err != nil {
				return err
			}
		}
	}

	seedGames := []struct {
		title     string
		slug      string
		price     float64
		digital   bool
		platforms []string
		genres    []string
	}{
		{"The Witcher 3: Wild Hunt", "the-witcher-3-wild-hunt", 39999, true, []string{"PC"}, []string{"RPG"}},
		{"Cyberpunk 2077", "cyberpunk-2077", 59999, true, []string{"PC"}, []string{"RPG"}},
		{"Red Dead Redemption 2", "red-dead-redemption-2", 49999, false, []string{"PS5"}, []string{"Action"}},
		{"Elden Ring", "elden-ring", 99999, true, []string{"PC", "PS5", "Xbox"}, []string{"RPG", "Action"}},
		{"God of War Ragnarok", "god-of-war-ragnarok", 119999, true, []string{"PS5"}, []string{"Action", "Adventure"}},
		{"Horizon Forbidden West", "horizon-forbidden-west", 109999, true, []string{"PS5"}, []string{"Action", "Adventure"}},
		{"Marvel's Spider-Man 2", "spider-man-2", 129999, true, []string{"PS5"}, []string{"Action"}},
		{"The Last of Us Part I", "the-last-of-us-part-1", 119999, true, []string{"PS5"}, []string{"Action", "Adventure"}},
		{"Gran Turismo 7", "gran-turismo-7", 94999, true, []string{"PS5"}, []string{"Racing"}},
		{"Demon's Souls", "demons-souls", 89999, false, []string{"PS5"}, []string{"RPG", "Action"}},
		{"Returnal", "returnal", 109999, false, []string{"PS5"}, []string{"Action", "Shooter"}},
		{"Ratchet & Clank: Rift Apart", "ratchet-clank-rift-apart", 119999, false, []string{"PS5"}, []string{"Action", "Adventure"}},
		{"Sackboy: A Big Adventure", "sackboy-big-adventure", 79999, false, []string{"PS5"}, []string{"Adventure", "Platformer"}},
		{"Astro's Playroom", "astros-playroom", 49999, false, []string{"PS5"}, []string{"Adventure", "Platformer"}},
		{"Final Fantasy XVI", "final-fantasy-16", 139999, false, []string{"PS5"}, []string{"RPG", "Action"}},
	}

	for _, sg := range seedGames {
		var count int64
		if err := db.Model(&models.Game{}).Where("slug = ?", sg.slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		game := models.Game{
			Title:     sg.title,
			Slug:      sg.slug,
			Price:     sg.price,
			IsDigital: sg.digital,
		}
		if err := db.Create(&game).Error; err != nil {
			return err
		}

		for _, platformName := range sg.platforms {
			var platform models.Platform
			if err := db.Where("name = ?", platformName).First(&platform).Error; err != nil {
				return err
			}
			if err := db.Create(&models.GamePlatform{GameID: game.ID, PlatformID: platform.ID}).Error; err != nil {
				return err
			}
		}
		for _, genreName := range sg.genres {
			var genre models.Genre
			if err := db.Where("name = ?", genreName).First(&genre).Error; err != nil {
				return err
			}
			if err := db.Create(&models.GameGenre{GameID: game.ID, GenreID: genre.ID}).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
