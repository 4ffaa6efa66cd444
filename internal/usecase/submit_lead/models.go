package submit_lead

import "time"

// NotificationConfig параметры уведомительных писем
type NotificationConfig struct {
	From            string   // Адрес отправителя
	AdminRecipients []string // Внутренний список рассылки для уведомлений о лидах
}

// Request модель запроса на отправку заявки
type Request struct {
	Name  string // Имя (обязательно)
	Email string // Email (обязательно, только проверка наличия)
	Phone *string

	EventType   *string    // Тип мероприятия (опционально)
	EventDate   *time.Time // Желаемая дата мероприятия (опционально)
	GuestCount  *int       // Количество гостей (опционально, > 0)
	BudgetRange *string    // Бюджетная категория (опционально)
	Message     *string    // Свободный текст (опционально)
}

// Response модель ответа с созданным лидом
type Response struct {
	ID        int64     // ID созданного лида
	Status    string    // Статус лида (всегда "new")
	CreatedAt time.Time // Время создания
}
