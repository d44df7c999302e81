package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account; a user doubles as a channel.
// Password and RefreshToken never leave the process.
type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username     string               `bson:"username" json:"username"`
	Email        string               `bson:"email" json:"email"`
	Fullname     string               `bson:"fullname" json:"fullname"`
	Avatar       string               `bson:"avatar,omitempty" json:"avatar,omitempty"`
	CoverImage   string               `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Password     string               `bson:"password,omitempty" json:"-"`
	RefreshToken string               `bson:"refreshToken,omitempty" json:"-"`
	Subscribers  []primitive.ObjectID `bson:"subscribers,omitempty" json:"subscribers,omitempty"`
	Subscribed   []primitive.ObjectID `bson:"subscribed,omitempty" json:"subscribed,omitempty"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// Profile is the public subset of a user embedded in listings.
type Profile struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Username string             `bson:"username" json:"username"`
	Fullname string             `bson:"fullname" json:"fullname"`
	Avatar   string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
}

// Profile returns the public view of the user.
func (u *User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		Username: u.Username,
		Fullname: u.Fullname,
		Avatar:   u.Avatar,
	}
}
