package domain

// Session is the local view of an authenticated user. A nil *Session means
// nobody is signed in.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	UID   string `json:"uid"`
}
