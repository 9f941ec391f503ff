package service

import "errors"

var (
	// ErrTextRequired — текст поста или комментария пуст после обрезки пробелов.
	ErrTextRequired = errors.New("текст не может быть пустым")
	// ErrPermissionDenied — попытка изменить чужой пост.
	ErrPermissionDenied = errors.New("доступ запрещен")
	// ErrAuthRequired — операция требует аутентифицированного пользователя.
	ErrAuthRequired = errors.New("требуется авторизация")
)
