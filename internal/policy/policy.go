package policy

import (
	"time"

	"github.com/m04kA/MCN-SessionService/internal/domain"
)

// Пакет собирает все правила доступа к жизненному циклу сессий
// Функции чистые и тотальные: никаких побочных эффектов и ошибок,
// вызывающий код транслирует false в отказ авторизации

// Operation операция над сессией, для которой проверяются права
type Operation string

const (
	OpComplete     Operation = "complete"
	OpCancel       Operation = "cancel"
	OpChangeStatus Operation = "change_status"
)

// CanBookFor проверяет, может ли actor создать запись для клиента targetClientID
// Клиент бронирует только для себя; админы - для любого явно указанного клиента
func CanBookFor(actor domain.Actor, targetClientID int64) bool {
	if actor.IsAdmin() {
		return targetClientID > 0
	}
	return actor.ID == targetClientID
}

// CanModify проверяет право actor выполнить op над сессией session,
// слот которой принадлежит сотруднику slotOwnerID
// Админы могут всё; сотрудник - только над сессиями своих слотов;
// клиент - только отмену собственной сессии
func CanModify(actor domain.Actor, session *domain.Session, slotOwnerID int64, op Operation) bool {
	if actor.IsAdmin() {
		return true
	}

	if actor.IsEmployee() {
		return slotOwnerID == actor.ID
	}

	// Обычный клиент: только cancel и только своей сессии
	return op == OpCancel && session.UserID == actor.ID
}

// CanCancelNow проверяет правило окна отмены
// Не-админ не может отменить сессию меньше чем за CancellationNotice
// до начала слота; slotStart - наивное локальное время начала
func CanCancelNow(actor domain.Actor, slotStart time.Time, now time.Time) bool {
	if actor.IsAdmin() {
		return true
	}
	return slotStart.Sub(now) >= domain.CancellationNotice
}
