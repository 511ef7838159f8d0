package domain

import "time"

// Справочные сущности каталога услуг
// Их жизненный цикл (CRUD) управляется извне; ядро только читает их
// для валидации ссылок и обогащения выдачи

// District отделение сети
type District struct {
	ID      int64
	Name    string
	Address *string
	Phone   *string
	Email   *string
}

// Category категория услуг внутри отделения
type Category struct {
	ID          int64
	Name        string
	Description *string
	DistrictID  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Direction конкретная услуга внутри категории
// RequiresConfirmation - записи на такую услугу создаются в статусе
// pending_confirmation и требуют подтверждения сотрудником
type Direction struct {
	ID                   int64
	Name                 string
	Description          *string
	Requirements         *string
	CategoryID           int64
	RequiresConfirmation bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
