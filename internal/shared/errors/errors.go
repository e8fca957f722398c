// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import (
	"errors"
	"fmt"
)

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// Документ хранилища не читается или повреждён
	ErrStorage = errors.New("storage error")
)

// только для пользователей и плейлистов
var (
	// сгенерированный userId уже занят, нужно сгенерировать другой
	ErrIDCollision = errors.New("user id collision")
	// action в PUT /playlist не add и не remove
	ErrInvalidAction = fmt.Errorf("invalid action: %w", ErrInvalidInput)
)
