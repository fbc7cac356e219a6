package models

import "time"

// DisplayName maps a Google account email to the employee's first name.
type DisplayName struct {
	Email     string    `bson:"email" json:"email"`
	FirstName string    `bson:"firstName" json:"firstName"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserInfoResponse is the body of GET /user-info.
type UserInfoResponse struct {
	Email     string  `json:"email"`
	HasName   bool    `json:"hasName"`
	FirstName *string `json:"firstName"`
}
