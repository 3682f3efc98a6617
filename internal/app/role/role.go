package role

// Роли пользователей системы
type Role int

const (
	Estimator Role = iota // составитель смет, работает со своими проектами
	Surveyor              // сюрвейер, читает все проекты и ведет историческую базу
	Admin                 // администратор, управляет справочниками и пользователями
)

func (r Role) String() string {
	switch r {
	case Estimator:
		return "estimator"
	case Surveyor:
		return "surveyor"
	case Admin:
		return "admin"
	}
	return "unknown"
}
