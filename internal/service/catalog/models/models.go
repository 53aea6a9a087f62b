package models

// ActivityInfo активность вместе со сводкой по её ресурсам
type ActivityInfo struct {
	ID              int64
	Slug            string
	Name            string
	Summary         *string
	DurationMinutes int
	ResourceCount   int
	MaxCapacity     int
}

// AddOnInfo дополнение из каталога
type AddOnInfo struct {
	ID         int64
	Name       string
	PriceCents int64
	PerPerson  bool
}
