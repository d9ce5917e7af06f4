package models

// User-facing messages, shown as-is by the landing page
const (
	MsgNoData         = "Нет данных"
	MsgLeadRequired   = "Имя, телефон и email обязательны"
	MsgOrderRequired  = "Все поля обязательны"
	MsgNameTooShort   = "Имя слишком короткое"
	MsgInvalidEmail   = "Некорректный email"
	MsgTelegramPrefix = "Telegram должен начинаться с @"
	MsgLeadAccepted   = "Спасибо! Ты в списке."
	MsgOrderAccepted  = "Заявка отправлена!"
	MsgServerError    = "Ошибка сервера. Попробуй позже."
	ErrNotFound       = "Not found"
	ErrInternalServer = "Internal server error"
	HealthStatusOK    = "ok"
)
