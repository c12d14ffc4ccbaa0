// Package season содержит фиксированный словарь сезонов и календарную таблицу
// соответствия месяца текущему сезону (по индийскому календарю поездок).
package season

import "time"

// Season — один из пяти допустимых сезонов каталога направлений.
type Season string

const (
	Winter  Season = "Winter"
	Summer  Season = "Summer"
	Monsoon Season = "Monsoon"
	Autumn  Season = "Autumn"
	// Spring допустим как значение в каталоге, но календарная таблица
	// ни для одного месяца его не возвращает.
	Spring Season = "Spring"
)

// All перечисляет допустимые значения сезона для валидации словаря.
var All = []Season{Winter, Summer, Monsoon, Autumn, Spring}

// Valid сообщает, входит ли значение в словарь сезонов.
func Valid(s string) bool {
	for _, v := range All {
		if string(v) == s {
			return true
		}
	}
	return false
}

// Current возвращает сезон для переданного момента времени:
// декабрь–февраль — Winter, март–май — Summer, июнь–сентябрь — Monsoon,
// октябрь и ноябрь — Autumn.
func Current(now time.Time) Season {
	switch m := now.Month(); {
	case m == time.December || m <= time.February:
		return Winter
	case m <= time.May:
		return Summer
	case m <= time.September:
		return Monsoon
	default:
		return Autumn
	}
}
