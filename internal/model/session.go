package model

// Session is the persisted {token, user} pair identifying the current
// signed-in actor. A zero Session means "not signed in".
type Session struct {
	Token string      `json:"token"`
	User  *UserRecord `json:"user"`
}

// Active reports whether the session carries a usable token.
func (s Session) Active() bool {
	return s.Token != ""
}
