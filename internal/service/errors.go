package service

import "errors"

// Business outcomes returned to the request layer. Each maps to a distinct
// HTTP response in the controller; none of them is a programming error.
var (
	ErrLessonNotFound     = errors.New("lesson not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrInstructorNotFound = errors.New("instructor not found")
	ErrEquipmentNotFound  = errors.New("equipment not found")
	ErrRentalNotFound     = errors.New("rental not found")
	ErrClerkNotFound      = errors.New("rental clerk not found")

	ErrLessonNotFinished = errors.New("lesson is not finished")
	ErrNotAParticipant   = errors.New("client did not attend this lesson")
	ErrAlreadyRated      = errors.New("lesson already rated by this client")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
