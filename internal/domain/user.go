package domain

import "time"

// User is an account record. Password holds the bcrypt hash and is never
// serialized to JSON.
type User struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"-"`
	LastLogin time.Time `bson:"last_login,omitempty" json:"-"`
}
