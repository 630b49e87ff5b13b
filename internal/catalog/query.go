package catalog

import (
	"errors"
	"strings"

	"gamestore/backend/internal/models"

	"gorm.io/gorm"
)

const (
	// DefaultPageSize is used when the caller passes a non-positive page size.
	DefaultPageSize = 10
	// MaxPageSize caps how many games one page may return.
	MaxPageSize = 100
)

// ListParams are the optional filters and pagination for ListGames.
type ListParams struct {
	Search   string
	Platform string
	Genre    string
	Page     int
	PageSize int
}

// GameSummary is the projection returned by catalog listings.
type GameSummary struct {
	ID        uint    `json:"id"`
	Title     string  `json:"title"`
	Slug      string  `json:"slug"`
	Price     float64 `json:"price"`
	IsDigital bool    `json:"isDigital"`
}

// GameList is one page of a filtered listing. Total counts the whole
// filtered set, not just this page.
type GameList struct {
	Total int64         `json:"total"`
	Items []GameSummary `json:"items"`
}

// GameDetail is a game with its associated platforms and genres resolved,
// ordered ascending by name.
type GameDetail struct {
	Game      models.Game
	Platforms []models.Platform
	Genres    []models.Genre
}

// PlatformNames returns the names of the game's platforms.
func (d *GameDetail) PlatformNames() []string {
	names := make([]string, 0, len(d.Platforms))
	for _, p := range d.Platforms {
		names = append(names, p.Name)
	}
	return names
}

// GenreNames returns the names of the game's genres.
func (d *GameDetail) GenreNames() []string {
	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		names = append(names, g.Name)
	}
	return names
}

// ListGames answers a filtered, paginated catalog listing ordered by
// ascending price with id as the tiebreak, so pages stay stable across
// requests. Page clamps to 1; page size defaults to DefaultPageSize and
// clamps to [1, MaxPageSize].
func (s *Store) ListGames(p ListParams) (*GameList, error) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	// A separate count query: GORM's Count on a grouped query counts rows
	// per group, so grouped filters count distinct games via a subquery.
	var total int64
	if p.Platform != "" || p.Genre != "" {
		sub := s.listQuery(p).Select("games.id")
		if err := s.db.Table("(?) as sub", sub).Count(&total).Error; err != nil {
			return nil, err
		}
	} else {
		if err := s.listQuery(p).Count(&total).Error; err != nil {
			return nil, err
		}
	}

	var games []models.Game
	err := s.listQuery(p).
		Order("games.price ASC, games.id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&games).Error
	if err != nil {
		return nil, err
	}

	items := make([]GameSummary, 0, len(games))
	for _, game := range games {
		items = append(items, GameSummary{
			ID:        game.ID,
			Title:     game.Title,
			Slug:      game.Slug,
			Price:     game.Price,
			IsDigital: game.IsDigital,
		})
	}

	return &GameList{Total: total, Items: items}, nil
}

// listQuery builds a fresh filtered query. Each caller gets its own query
// because GORM accumulates clauses on the statement.
func (s *Store) listQuery(p ListParams) *gorm.DB {
	q := s.db.Model(&models.Game{})

	// Whitespace-only search terms are treated as absent.
	if term := strings.TrimSpace(p.Search); term != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(term)+"%")
	}

	grouped := false
	if p.Platform != "" {
		q = q.Joins("JOIN game_platforms gp ON gp.game_id = games.id").
			Joins("JOIN platforms p ON p.id = gp.platform_id").
			Where("p.name = ?", p.Platform)
		grouped = true
	}
	if p.Genre != "" {
		q = q.Joins("JOIN game_genres gg ON gg.game_id = games.id").
			Joins("JOIN genres ge ON ge.id = gg.genre_id").
			Where("ge.name = ?", p.Genre)
		grouped = true
	}

	// A game with two matching joins must not be listed twice.
	if grouped {
		q = q.Group("games.id")
	}
	return q
}

// GetGameBySlug looks a game up by its exact slug and resolves its platform
// and genre names.
func (s *Store) GetGameBySlug(slug string) (*GameDetail, error) {
	var game models.Game
	if err := s.db.Where("slug = ?", slug).First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.resolveDetail(game)
}

// GetGame looks a game up by id and resolves its platform and genre names.
func (s *Store) GetGame(id uint) (*GameDetail, error) {
	var game models.Game
	if err := s.db.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.resolveDetail(game)
}

// ListGameDetails returns the whole catalog with resolved names, for the
// admin overview.
func (s *Store) ListGameDetails() ([]GameDetail, error) {
	var games []models.Game
	if err := s.db.Order("id ASC").Find(&games).Error; err != nil {
		return nil, err
	}

	details := make([]GameDetail, 0, len(games))
	for _, game := range games {
		detail, err := s.resolveDetail(game)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *Store) resolveDetail(game models.Game) (*GameDetail, error) {
	detail := GameDetail{Game: game, Platforms: []models.Platform{}, Genres: []models.Genre{}}

	err := s.db.Model(&models.Platform{}).
		Joins("JOIN game_platforms gp ON gp.platform_id = platforms.id").
		Where("gp.game_id = ?", game.ID).
		Order("platforms.name ASC").
		Find(&detail.Platforms).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Model(&models.Genre{}).
		Joins("JOIN game_genres gg ON gg.genre_id = genres.id").
		Where("gg.game_id = ?", game.ID).
		Order("genres.name ASC").
		Find(&detail.Genres).Error
	if err != nil {
		return nil, err
	}

	return &detail, nil
}

// ListPlatforms returns all platforms ordered by name.
func (s *Store) ListPlatforms() ([]models.Platform, error) {
	var platforms []models.Platform
	if err := s.db.Order("name ASC").Find(&platforms).Error; err != nil {
		return nil, err
	}
	return platforms, nil
}

// ListGenres returns all genres ordered by name.
func (s *Store) ListGenres() ([]models.Genre, error) {
	var genres []models.Genre
	if err := s.db.Order("name ASC").Find(&genres).Error; err != nil {
		return nil, err
	}
	return genres, nil
}
