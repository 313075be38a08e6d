package domain

import "errors"

var (
	ErrCampgroundNotFound = errors.New("campground: not found")
	ErrSiteNotFound       = errors.New("campground: site not found")
	ErrInvalidCampground  = errors.New("campground: invalid campground")
	ErrInvalidSite        = errors.New("campground: invalid site")
	ErrInvalidPolicy      = errors.New("campground: invalid policy configuration")
)
