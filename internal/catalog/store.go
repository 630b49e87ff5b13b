package catalog

import (
	"errors"

	"gamestore/backend/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no game matches the given id or slug.
	ErrNotFound = errors.New("game not found")

	// ErrDuplicateSlug is returned when another game already holds the
	// requested slug.
	ErrDuplicateSlug = errors.New("slug already exists")
)

// Store owns the catalog entities and the integrity rules between them.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store on top of the given database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GameInput carries the scalar fields and the complete desired set of
// platform/genre associations for a create or update.
type GameInput struct {
	Title       string
	Slug        string
	Price       float64
	IsDigital   bool
	ImageUrl    string
	ReleaseDate string
	PlatformIDs []uint
	GenreIDs    []uint
}

// CreateGame persists a new game and its platform/genre join rows in one
// transaction. Requested ids that don't resolve to an existing platform or
// genre are dropped without error.
func (s *Store) CreateGame(input GameInput) (*models.Game, error) {
	game := models.Game{
		Title:       input.Title,
		Slug:        input.Slug,
		Price:       input.Price,
		IsDigital:   input.IsDigital,
		ImageUrl:    input.ImageUrl,
		ReleaseDate: input.ReleaseDate,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Game{}).Where("slug = ?", input.Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateSlug
		}

		if err := tx.Create(&game).Error; err != nil {
			return err
		}

		return syncRelations(tx, game.ID, input.PlatformIDs, input.GenreIDs)
	})
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// UpdateGame overwrites a game's scalar fields and replaces its platform and
// genre associations with exactly the requested sets. An empty id list
// clears the corresponding associations: the input is the complete desired
// state, not a delta.
func (s *Store) UpdateGame(id uint, input GameInput) (*models.Game, error) {
	var game models.Game

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&game, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Game{}).Where("slug = ? AND id <> ?", input.Slug, id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateSlug
		}

		game.Title = input.Title
		game.Slug = input.Slug
		game.Price = input.Price
		game.IsDigital = input.IsDigital
		game.ImageUrl = input.ImageUrl
		game.ReleaseDate = input.ReleaseDate
		if err := tx.Save(&game).Error; err != nil {
			return err
		}

		// Full replace: drop every existing join row, then re-apply.
		if err := tx.Where("game_id = ?", id).Delete(&models.GamePlatform{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", id).Delete(&models.GameGenre{}).Error; err != nil {
			return err
		}

		return syncRelations(tx, game.ID, input.PlatformIDs, input.GenreIDs)
	})
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// DeleteGame removes a game together with all of its join rows. Joins are
// deleted before the parent inside one transaction so no orphan can ever be
// observed.
func (s *Store) DeleteGame(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", id).Delete(&models.GamePlatform{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", id).Delete(&models.GameGenre{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Game{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// syncRelations inserts one join row per requested id that resolves to an
// existing platform or genre. Unknown ids are skipped, duplicates collapse
// to a single row.
func syncRelations(tx *gorm.DB, gameID uint, platformIDs, genreIDs []uint) error {
	seenPlatforms := make(map[uint]bool)
	for _, platformID := range platformIDs {
		if seenPlatforms[platformID] {
			continue
		}
		seenPlatforms[platformID] = true

		var count int64
		if err := tx.Model(&models.Platform{}).Where("id = ?", platformID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			continue
		}
		if err := tx.Create(&models.GamePlatform{GameID: gameID, PlatformID: platformID}).Error; err != nil {
			return err
		}
	}

	seenGenres := make(map[uint]bool)
	for _, genreID := range genreIDs {
		if seenGenres[genreID] {
			continue
		}
		seenGenres[genreID] = true

		var count int64
		if err := tx.Model(&models.Genre{}).Where("id = ?", genreID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			continue
		}
		if err := tx.Create(&models.GameGenre{GameID: gameID, GenreID: genreID}).Error; err != nil {
			return err
		}
	}

	return nil
}
