package models

import "errors"

var (
	// ErrPartialAWSKeyPair indicates that only one half of the AWS access
	// key pair was provided; key authentication needs both.
	ErrPartialAWSKeyPair = errors.New("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be provided together")
)
