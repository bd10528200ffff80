package model

import "time"

// User represents an account in the system.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"createdAt"`
}

// Like marks that a user liked a post. A post holds at most one like
// per user; order is insertion order, newest first.
type Like struct {
	UserID string `json:"user"`
}

// Comment is an entry in a post's comment sequence. Name and Avatar are
// snapshots of the author at comment time, immutable afterwards.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Post is a parent document: likes and comments are owned by the post
// and persisted with it as a unit.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Text      string    `json:"text"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
}

// Experience is a work history entry in a profile.
type Experience struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// Education is a schooling entry in a profile.
type Education struct {
	ID           string     `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// Social holds profile links to external networks.
type Social struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Profile is a parent document keyed 1:1 by the owning user. Experience
// and education sequences are owned by the profile and persisted with it.
type Profile struct {
	UserID         string       `json:"user"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Status         string       `json:"status"`
	Skills         []string     `json:"skills"`
	Bio            string       `json:"bio,omitempty"`
	GithubUsername string       `json:"githubusername,omitempty"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Social         Social       `json:"social"`
	CreatedAt      time.Time    `json:"createdAt"`
}
