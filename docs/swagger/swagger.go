// Package swagger Hotspot Microservice API.
//
// Микросервис детекции горячих точек нелегального рыболовства.
// Кластеризует позиции судов (AIS и неотслеживаемые спутниковые детекции)
// и ранжирует кластеры по риску нелегальной активности.
//
// Основные возможности:
// - Ингест батчей позиций судов (HTTP и Redis Streams)
// - Кластеризация позиций в пределах настраиваемого радиуса
// - Risk scoring кластеров по доле неотслеживаемых судов
// - Ранжированные хотспоты, фильтрация по региону и зонам мониторинга
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package swagger
