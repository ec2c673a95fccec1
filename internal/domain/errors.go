package domain

import "errors"

var (
	// ErrEmptyQuestionSet is returned when the question bank holds no questions at all.
	ErrEmptyQuestionSet = errors.New("no questions available")
	// ErrEmptyCategoryResult is returned when a requested category matches no questions.
	ErrEmptyCategoryResult = errors.New("no questions in the requested category")
	// ErrCorruptQuestionBank indicates the bank document could not be parsed.
	ErrCorruptQuestionBank = errors.New("question bank document is malformed")
	// ErrUnknownLogin is returned by operations that require an existing user.
	ErrUnknownLogin = errors.New("unknown login")
	// ErrLoginTaken is returned when registering a login that already exists.
	ErrLoginTaken = errors.New("login already taken")
	// ErrWrongPassword is returned when credentials do not match the stored record.
	ErrWrongPassword = errors.New("wrong password")
)
