package specification

import "gorm.io/gorm"

// Specification narrows a store query. Implementations translate themselves
// into GORM clauses; repositories apply them left to right.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
