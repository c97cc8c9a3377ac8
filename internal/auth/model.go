package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// Credential is a persisted admin login record. PasswordHash never leaves
// this package and is never serialized into responses or logs.
type Credential struct {
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	TokenEpoch   int       `bson:"token_epoch" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
