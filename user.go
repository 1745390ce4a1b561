package tmi

// User identifies a chat participant: numeric id, login (the lowercase,
// ASCII-only handle), and display name (may differ from login in case or
// script).
type User struct {
	ID    string
	Login string
	Name  string
}
