// Package store is the persistence wrapper around the clinic database. Each
// collection gets add (insert, duplicate ids rejected), save (unconditional
// upsert), get, list, delete and clear operations, plus bulk snapshot and
// backup helpers shared across the three collections.
package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrDuplicate is returned by Add* when the record id, or a unique
	// secondary key such as the patient phone number, already exists.
	ErrDuplicate = errors.New("record already exists")
	// ErrNotFound is returned by Get* when no record has the given id.
	ErrNotFound = errors.New("record not found")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) add(rec any) error {
	if err := s.db.Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *Store) save(rec any) error {
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(rec).Error; err != nil {
		// The id conflict is absorbed by the upsert, so a duplicate error
		// here means a unique secondary key collided with another row.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *Store) get(dest any, id string) error {
	if err := s.db.First(dest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Store) clear(model any) error {
	return s.db.Where("1 = 1").Delete(model).Error
}
