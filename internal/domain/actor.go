package domain

// Role роль пользователя в системе
// Закрытое перечисление - все проверки прав идут через internal/policy,
// строки ролей не сравниваются в обработчиках напрямую
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleLocalAdmin Role = "local_admin"
	RoleEmployee   Role = "employee"
	RoleUser       Role = "user"
)

// Actor контекст авторизации запроса
// Не персистится - собирается middleware из токена доступа
type Actor struct {
	ID         int64
	Role       Role
	DistrictID *int64
}

// IsAdmin возвращает true для административных ролей
func (a Actor) IsAdmin() bool {
	return a.Role == RoleSuperAdmin || a.Role == RoleLocalAdmin
}

// IsEmployee возвращает true для роли сотрудника
func (a Actor) IsEmployee() bool {
	return a.Role == RoleEmployee
}

// ParseRole валидирует и конвертирует строку в Role
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleSuperAdmin, RoleLocalAdmin, RoleEmployee, RoleUser:
		return Role(s), true
	default:
		return "", false
	}
}
