package repository

import (
	"github.com/hotspot-microservice/internal/domain"
)

// FixStore - хранилище текущего набора позиций судов. Единственное мутабельное
// состояние движка: Upsert сериализуется относительно читателей, Query отдаёт
// копии, не разделяющие память с хранилищем.
type FixStore interface {
	// Upsert добавляет или заменяет фиксы (last-write-wins по id).
	// Фиксы с невалидными координатами отклоняются поштучно, остальной
	// батч обрабатывается; отклонённые перечисляются в результате.
	Upsert(fixes []domain.PositionFix) domain.UpsertResult

	// Query возвращает фиксы, чей timestamp попадает в окно.
	// При visibleTracked=false untracked фиксы исключаются полностью
	// (клиренс-гейт: без допуска тёмные детекции не видны).
	Query(window domain.TimeRange, visibleTracked bool) []domain.PositionFix

	// Summary возвращает сводку по всему текущему набору
	Summary() domain.FixSummary

	// Len возвращает размер текущего набора
	Len() int
}
