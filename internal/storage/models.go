package storage

import "time"

// User is a registered account.
type User struct {
	ID                string    `gorm:"primarykey;size:36" json:"id"`
	Username          string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email             string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash      string    `gorm:"size:100;not null" json:"-"`
	ProfilePictureURL string    `gorm:"size:300" json:"profile_picture_url"`
	FavoriteGame      string    `gorm:"size:100" json:"favorite_game"`
	Bio               string    `gorm:"size:250" json:"bio"`
	CreatedAt         time.Time `json:"created_at"`
}

// TableName returns the table name for User.
func (User) TableName() string {
	return "users"
}

// Lobby is an ad-hoc game session with a capacity limit.
type Lobby struct {
	ID          string    `gorm:"primarykey;size:36" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Game        string    `gorm:"size:100;not null" json:"game"`
	Mode        string    `gorm:"size:50;not null" json:"mode"`
	Description string    `gorm:"size:500" json:"description"`
	MaxPlayers  int       `gorm:"not null" json:"max_players"`
	SkillLevel  string    `gorm:"size:20;default:Any" json:"skill_level"`
	ImageURL    string    `gorm:"size:300" json:"image_url"`
	OwnerID     string    `gorm:"size:36;index;not null" json:"owner_id"`
	Players     []User    `gorm:"many2many:lobby_players" json:"players"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the table name for Lobby.
func (Lobby) TableName() string {
	return "lobbies"
}

// Community is a persistent per-game group.
type Community struct {
	ID          string    `gorm:"primarykey;size:36" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Game        string    `gorm:"size:100;uniqueIndex;not null" json:"game"`
	Description string    `gorm:"size:500" json:"description"`
	ImageURL    string    `gorm:"size:300" json:"image_url"`
	Members     []User    `gorm:"many2many:community_members" json:"members"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the table name for Community.
func (Community) TableName() string {
	return "communities"
}

// Rating is a star rating one player gave another after sharing a lobby.
type Rating struct {
	ID          string    `gorm:"primarykey;size:36" json:"id"`
	RaterID     string    `gorm:"size:36;index;not null" json:"rater_id"`
	Rater       User      `gorm:"foreignKey:RaterID" json:"rater"`
	RatedUserID string    `gorm:"size:36;index;not null" json:"rated_user_id"`
	LobbyID     string    `gorm:"size:36;index;not null" json:"lobby_id"`
	Stars       int       `gorm:"not null" json:"stars"`
	Comment     string    `gorm:"size:500" json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the table name for Rating.
func (Rating) TableName() string {
	return "ratings"
}

// Report is a misconduct report against a player, tied to the lobby where
// the interaction happened.
type Report struct {
	ID             string    `gorm:"primarykey;size:36" json:"id"`
	ReporterID     string    `gorm:"size:36;index;not null" json:"reporter_id"`
	ReportedUserID string    `gorm:"size:36;index;not null" json:"reported_user_id"`
	LobbyID        string    `gorm:"size:36;index;not null" json:"lobby_id"`
	Reason         string    `gorm:"size:1000;not null" json:"reason"`
	Status         string    `gorm:"size:20;default:pending" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the table name for Report.
func (Report) TableName() string {
	return "reports"
}
