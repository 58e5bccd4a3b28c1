package catalog

import "errors"

var (
	ErrPlanNotFound             = errors.New("pricing plan not found")
	ErrInvalidCatalog           = errors.New("invalid pricing catalog: distinct plans share a price")
	ErrInvalidPlanConfiguration = errors.New("invalid pricing plan configuration")
)
