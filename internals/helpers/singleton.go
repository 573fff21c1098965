package helper

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SingletonID is the fixed identity for single-row resources (About,
// ContactInfo). They are addressed without an id; this is the row they
// all resolve to.
const SingletonID uint = 1

// FetchOrInitialize guarantees the singleton row exists and returns it.
// The insert is "create if absent" in one statement (ON CONFLICT DO
// NOTHING on the primary key), so two concurrent first requests cannot
// create two rows.
func FetchOrInitialize[T any](db *gorm.DB, blank *T) (*T, error) {
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(blank).Error; err != nil {
		return nil, err
	}
	var out T
	if err := db.First(&out, SingletonID).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
