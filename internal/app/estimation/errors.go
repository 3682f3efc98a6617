package estimation

import "errors"

var (
	// ErrProjectNotFound - проект не существует, фатально для расчета итогов
	ErrProjectNotFound = errors.New("проект не найден")
	// ErrCostItemNotFound - расценка отсутствует в справочнике
	ErrCostItemNotFound = errors.New("расценка не найдена")
	// ErrLineItemNotFound - строка сметы не найдена
	ErrLineItemNotFound = errors.New("строка сметы не найдена")
)
