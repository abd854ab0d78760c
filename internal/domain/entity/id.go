// Package entity contains the core business objects of the project.
package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// NewID returns a fresh 24-character hex object id.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// IsValidID reports whether s is a well-formed object id.
func IsValidID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)

	return err == nil
}
