package model

const EntityName = "admin"

// Session is the value stored in Redis under session:<id>.
type Session struct {
	IsAdmin bool `json:"isAdmin"`
}
