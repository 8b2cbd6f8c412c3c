package service

import "errors"

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrEmptyCategoryName   = errors.New("category name is empty")
	ErrUnknownCategoryKind = errors.New("unknown category kind")
	ErrNonPositiveAmount   = errors.New("expense amount must be positive")
)
