package notifyservice

import "errors"

var (
	// ErrNotificationFailed возвращается, когда уведомление не доставлено.
	// Вызывающий код логирует ошибку и продолжает работу: уведомления -
	// best-effort, не часть контракта консистентности.
	ErrNotificationFailed = errors.New("notifyservice client: notification failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifyservice client: internal error")
)
