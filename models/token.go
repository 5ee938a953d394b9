package models

import "time"

// Token is an issued or parsed access token.
//
// SignedString holds the compact JWS form (header.payload.signature) ready to
// be sent in the "Authorization" header. UserID and ExpiresAt are decoded
// from the "sub" and "exp" claims.
type Token struct {
	SignedString string    `json:"token"`
	UserID       int64     `json:"-"`
	ExpiresAt    time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
