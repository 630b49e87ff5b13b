package catalog

import (
	"fmt"
	"testing"

	"gamestore/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedGame(t *testing.T, db *gorm.DB, title, slug string, price float64) models.Game {
	t.Helper()
	game := models.Game{Title: title, Slug: slug, Price: price, IsDigital: true}
	require.NoError(t, db.Create(&game).Error)
	return game
}

func linkPlatform(t *testing.T, db *gorm.DB, game models.Game, platform models.Platform) {
	t.Helper()
	require.NoError(t, db.Create(&models.GamePlatform{GameID: game.ID, PlatformID: platform.ID}).Error)
}

func linkGenre(t *testing.T, db *gorm.DB, game models.Game, genre models.Genre) {
	t.Helper()
	require.NoError(t, db.Create(&models.GameGenre{GameID: game.ID, GenreID: genre.ID}).Error)
}

func TestListGamesPagination(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	for i := 1; i <= 25; i++ {
		seedGame(t, db, fmt.Sprintf("Game %02d", i), fmt.Sprintf("game-%02d", i), float64(i*100))
	}

	list, err := store.ListGames(ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 25, list.Total, "total counts the whole filtered set")
	require.Len(t, list.Items, 10)

	for i := 1; i < len(list.Items); i++ {
		assert.LessOrEqual(t, list.Items[i-1].Price, list.Items[i].Price, "items ordered by ascending price")
	}

	last, err := store.ListGames(ListParams{Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 25, last.Total)
	assert.Len(t, last.Items, 5)

	empty, err := store.ListGames(ListParams{Page: 4, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, empty.Items)
}

func TestListGamesClampsPageArguments(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	for i := 1; i <= 15; i++ {
		seedGame(t, db, fmt.Sprintf("Game %02d", i), fmt.Sprintf("game-%02d", i), float64(i))
	}

	// page < 1 clamps to the first page, pageSize <= 0 falls back to the default
	list, err := store.ListGames(ListParams{Page: -3, PageSize: 0})
	require.NoError(t, err)
	assert.EqualValues(t, 15, list.Total)
	assert.Len(t, list.Items, DefaultPageSize)
	assert.Equal(t, "game-01", list.Items[0].Slug)
}

func TestListGamesPriceTiesBreakByID(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	a := seedGame(t, db, "Alpha", "alpha", 1999)
	b := seedGame(t, db, "Beta", "beta", 1999)
	c := seedGame(t, db, "Gamma", "gamma", 999)

	list, err := store.ListGames(ListParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	assert.Equal(t, c.ID, list.Items[0].ID)
	assert.Equal(t, a.ID, list.Items[1].ID)
	assert.Equal(t, b.ID, list.Items[2].ID)
}

func TestListGamesSearchIsCaseInsensitiveSubstring(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	seedGame(t, db, "Zelda: Tears of the Kingdom", "zelda-totk", 6999)
	seedGame(t, db, "Super Mario Odyssey", "mario-odyssey", 5999)

	list, err := store.ListGames(ListParams{Search: "TEARS", Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "zelda-totk", list.Items[0].Slug)

	list, err = store.ListGames(ListParams{Search: "zelda", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}

func TestListGamesBlankSearchIsIgnored(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	seedGame(t, db, "Stardew Valley", "stardew-valley", 1499)

	list, err := store.ListGames(ListParams{Search: "   ", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, list.Total)
}

func TestListGamesPlatformFilter(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	ps5 := seedPlatform(t, db, "PS5")
	pc := seedPlatform(t, db, "PC")

	onPS5 := seedGame(t, db, "Returnal", "returnal", 6999)
	linkPlatform(t, db, onPS5, ps5)
	onPC := seedGame(t, db, "Factorio", "factorio", 3499)
	linkPlatform(t, db, onPC, pc)

	list, err := store.ListGames(ListParams{Platform: "PS5", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, list.Total)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "returnal", list.Items[0].Slug)
}

func TestListGamesJoinFiltersDoNotDuplicate(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	// Platform name uniqueness is by convention only, so a game reachable
	// through two join rows with the same name must still appear once.
	ps5a := seedPlatform(t, db, "PS5")
	ps5b := seedPlatform(t, db, "PS5")
	action := seedGenre(t, db, "Action")

	game := seedGame(t, db, "Ghost of Tsushima", "ghost-of-tsushima", 4999)
	linkPlatform(t, db, game, ps5a)
	linkPlatform(t, db, game, ps5b)
	linkGenre(t, db, game, action)

	list, err := store.ListGames(ListParams{Platform: "PS5", Genre: "Action", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, list.Total, "the count must de-duplicate as well")
	assert.Len(t, list.Items, 1)
}

func TestListGamesCombinedFilters(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	ps5 := seedPlatform(t, db, "PS5")
	pc := seedPlatform(t, db, "PC")
	rpg := seedGenre(t, db, "RPG")
	racing := seedGenre(t, db, "Racing")

	match := seedGame(t, db, "Final Fantasy XVI", "final-fantasy-16", 9999)
	linkPlatform(t, db, match, ps5)
	linkGenre(t, db, match, rpg)

	wrongGenre := seedGame(t, db, "Gran Turismo 7", "gran-turismo-7", 8999)
	linkPlatform(t, db, wrongGenre, ps5)
	linkGenre(t, db, wrongGenre, racing)

	wrongPlatform := seedGame(t, db, "Divinity Original Sin 2", "divinity-2", 4499)
	linkPlatform(t, db, wrongPlatform, pc)
	linkGenre(t, db, wrongPlatform, rpg)

	list, err := store.ListGames(ListParams{Search: "final", Platform: "PS5", Genre: "RPG", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, list.Total)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "final-fantasy-16", list.Items[0].Slug)
}

func TestGetGameBySlugIsCaseSensitive(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	seedGame(t, db, "Outer Wilds", "outer-wilds", 2499)

	_, err := store.GetGameBySlug("Outer-Wilds")
	assert.ErrorIs(t, err, ErrNotFound)

	detail, err := store.GetGameBySlug("outer-wilds")
	require.NoError(t, err)
	assert.Equal(t, "Outer Wilds", detail.Game.Title)
	assert.Empty(t, detail.Platforms)
	assert.Empty(t, detail.Genres)
}

func TestListPlatformsAndGenresOrderedByName(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	seedPlatform(t, db, "Xbox")
	seedPlatform(t, db, "PC")
	seedPlatform(t, db, "Switch")
	seedGenre(t, db, "Sports")
	seedGenre(t, db, "Action")

	platforms, err := store.ListPlatforms()
	require.NoError(t, err)
	require.Len(t, platforms, 3)
	assert.Equal(t, "PC", platforms[0].Name)
	assert.Equal(t, "Switch", platforms[1].Name)
	assert.Equal(t, "Xbox", platforms[2].Name)

	genres, err := store.ListGenres()
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Action", genres[0].Name)
	assert.Equal(t, "Sports", genres[1].Name)
}

func TestListGameDetailsIncludesReferences(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	pc := seedPlatform(t, db, "PC")
	indie := seedGenre(t, db, "Indie")

	game := seedGame(t, db, "Undertale", "undertale", 999)
	linkPlatform(t, db, game, pc)
	linkGenre(t, db, game, indie)
	seedGame(t, db, "Loneless", "loneless", 499)

	details, err := store.ListGameDetails()
	require.NoError(t, err)
	require.Len(t, details, 2)

	assert.Equal(t, "undertale", details[0].Game.Slug)
	require.Len(t, details[0].Platforms, 1)
	assert.Equal(t, pc.ID, details[0].Platforms[0].ID)
	require.Len(t, details[0].Genres, 1)
	assert.Equal(t, "Indie", details[0].Genres[0].Name)
	assert.Empty(t, details[1].Platforms)
}
