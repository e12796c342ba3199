package models

import "github.com/google/uuid"

// Identity — действующая сторона запроса.
// Нулевое значение — аноним; аутентифицированный пользователь несёт
// стабильный UserID (выдачей и хранением учёток занимается внешний
// auth-провайдер, сервис только сравнивает идентификаторы).
type Identity struct {
	UserID   uuid.UUID
	Username string
}

// Anonymous — аноним (нулевая Identity).
var Anonymous = Identity{}

// Authenticated сообщает, аутентифицирована ли сторона.
func (i Identity) Authenticated() bool {
	return i.UserID != uuid.Nil
}

// Owns сообщает, принадлежит ли стороне сущность с данным автором.
// Аноним не владеет ничем.
func (i Identity) Owns(authorID uuid.UUID) bool {
	return i.Authenticated() && i.UserID == authorID
}
