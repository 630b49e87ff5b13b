package models

// Platform represents a platform a game can be released on (e.g. "PC", "PS5").
// Name uniqueness is maintained by the seeder's lookup-before-insert, not a
// hard constraint.
type Platform struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null"`
}

// Genre represents a game genre (e.g. "RPG", "Shooter").
type Genre struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null"`
}

// GamePlatform is the join row linking a Game to a Platform.
// The primary key is a composite of (GameID, PlatformID) to ensure uniqueness.
type GamePlatform struct {
	GameID     uint `gorm:"primaryKey"`
	PlatformID uint `gorm:"primaryKey"`

	Game     Game     `gorm:"foreignKey:GameID;references:ID"`
	Platform Platform `gorm:"foreignKey:PlatformID;references:ID"`
}

// GameGenre is the join row linking a Game to a Genre.
type GameGenre struct {
	GameID  uint `gorm:"primaryKey"`
	GenreID uint `gorm:"primaryKey"`

	Game  Game  `gorm:"foreignKey:GameID;references:ID"`
	Genre Genre `gorm:"foreignKey:GenreID;references:ID"`
}
