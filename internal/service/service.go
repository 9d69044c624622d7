package service

import "errors"

// Ошибки уровня сервиса. Репозиторные gorm.ErrRecordNotFound наружу не
// выходят, хендлеры сопоставляют только эти значения.
var (
	ErrNotFound      = errors.New("record not found")
	ErrInvalidStatus = errors.New("invalid match status")
)
