// Package models defines the GORM models backing folder and item storage.
// Database models are kept separate from domain entities; converters map
// between the two at the repository boundary.
package models
