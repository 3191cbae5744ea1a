// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Car is a listing owned by exactly one user.
type Car struct {
	ID          uuid.UUID // Generated on creation, never changes.
	Title       string    `validate:"required,min=1,max=30"`
	Description string    `validate:"required,min=1,max=500"`
	Tags        CarTags
	Images      []string  // Public image URLs in upload order.
	OwnerID     uuid.UUID // Set on creation, never changes.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CarTags is the company/carType/dealer triple used for categorisation and search.
type CarTags struct {
	Company string `validate:"required"`
	CarType string `validate:"required"`
	Dealer  string `validate:"required"`
}

// IsOwnedBy reports whether userID owns the car.
func (c *Car) IsOwnedBy(userID uuid.UUID) bool {
	return c.OwnerID == userID
}

// RemoveImage drops the first occurrence of url and reports whether it was present.
func (c *Car) RemoveImage(url string) bool {
	idx := slices.Index(c.Images, url)
	if idx < 0 {
		return false
	}

	c.Images = slices.Delete(slices.Clone(c.Images), idx, idx+1)

	return true
}

// CarPatch carries the optional fields of a partial car update. A nil field
// leaves the stored value untouched.
type CarPatch struct {
	Title       *string
	Description *string
	Tags        *CarTags
}

// IsEmpty reports whether the patch changes nothing.
func (p *CarPatch) IsEmpty() bool {
	return p == nil || (p.Title == nil && p.Description == nil && p.Tags == nil)
}

// ApplyTo merges the patch into car.
func (p *CarPatch) ApplyTo(car *Car) {
	if p == nil {
		return
	}
	if p.Title != nil {
		car.Title = *p.Title
	}
	if p.Description != nil {
		car.Description = *p.Description
	}
	if p.Tags != nil {
		car.Tags = *p.Tags
	}
}
