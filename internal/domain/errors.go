package domain

import "errors"

var (
	ErrInvalidRequest = errors.New("phrase must not be blank")
	ErrUpstream       = errors.New("upstream completion failure")
	ErrInvalidCatalog = errors.New("invalid catalog")
)
