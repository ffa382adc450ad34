package ports

// DisplaySink — область отображения результата поиска.
// Каждый вызов полностью заменяет предыдущее содержимое.
type DisplaySink interface {
	// ShowLoading — индикатор загрузки.
	ShowLoading()
	// ShowError — одно сообщение об ошибке.
	ShowError(message string)
	// ShowResult — готовый HTML-фрагмент заказа.
	ShowResult(fragment string)
}
