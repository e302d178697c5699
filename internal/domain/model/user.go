package model

// User identifies the person whose credit records are being viewed.
type User struct {
	ID    int64
	Name  string
	Email string
}
