package services

import "time"

// AuthorSummary is the embedded author block rendered on cards, comments,
// and roadmap entries
type AuthorSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	AvatarRef string `json:"avatar"`
}

// IdeaView is the read projection of an idea for the feed and detail pages.
// All counts and viewer-relative booleans are derived from the edge set at
// composition time; nothing here is cached state.
type IdeaView struct {
	ID               string        `json:"id"`
	Author           AuthorSummary `json:"author"`
	Title            string        `json:"title"`
	Body             string        `json:"body"`
	Tags             []string      `json:"tags"`
	IsProject        bool          `json:"isProject"`
	LikeCount        int           `json:"likes"`
	CommentCount     int           `json:"comments"`
	Liked            bool          `json:"isLiked"`
	Bookmarked       bool          `json:"isBookmarked"`
	FollowingProject bool          `json:"isFollowingProject"`
	CreatedAt        time.Time     `json:"createdAt"`
}

// CommentView is the read projection of a comment
type CommentView struct {
	ID        string        `json:"id"`
	Author    AuthorSummary `json:"author"`
	Body      string        `json:"body"`
	LikeCount int           `json:"likes"`
	Liked     bool          `json:"isLiked"`
	CreatedAt time.Time     `json:"createdAt"`
}

// RoadmapUpdateView is the read projection of a roadmap entry
type RoadmapUpdateView struct {
	ID        string        `json:"id"`
	Author    AuthorSummary `json:"author"`
	Title     string        `json:"title"`
	Body      string        `json:"body"`
	IsInitial bool          `json:"isInitial"`
	CreatedAt time.Time     `json:"createdAt"`
}

// ProfileView is the public profile projection with derived stats
type ProfileView struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	AvatarRef      string    `json:"avatar"`
	Bio            string    `json:"bio"`
	Location       string    `json:"location,omitempty"`
	WebsiteRef     string    `json:"website,omitempty"`
	JoinedAt       time.Time `json:"joinedAt"`
	IdeaCount      int       `json:"ideas"`
	FollowerCount  int       `json:"followers"`
	FollowingCount int       `json:"following"`
	Following      bool      `json:"isFollowing"`
}
