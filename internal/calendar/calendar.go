// Package calendar переводит календарные даты в номера и границы периодов
// (месяц, квартал, год). Вся арифметика календарная, без приближений 30/365.
package calendar

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/cloud-ru/pathwise-go/internal/models"
)

// PeriodsPerYear возвращает число периодов капитализации в году
func PeriodsPerYear(f models.Frequency) int {
	switch f {
	case models.Monthly:
		return 12
	case models.Quarterly:
		return 4
	case models.Annually:
		return 1
	default:
		return 1
	}
}

// MonthsPerPeriod возвращает длину периода в месяцах
func MonthsPerPeriod(f models.Frequency) int {
	return 12 / PeriodsPerYear(f)
}

// MonthsBetween возвращает разницу в календарных месяцах, день месяца не учитывается
func MonthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

// Terms возвращает число платежных месяцев между датами включительно:
// месяц начала - первый срок. Для одинаковых дат - 1.
func Terms(start, end time.Time) int {
	return max(1, MonthsBetween(start, end)+1)
}

// TermsAsOf возвращает номер срока, в котором находится asOf.
// До начала кредита - 1, после окончания - полный срок.
func TermsAsOf(start, end, asOf time.Time) int {
	if asOf.Before(start) {
		return 1
	}
	if !asOf.Before(end) {
		return Terms(start, end)
	}
	return Terms(start, asOf)
}

// NextCompoundingDate сдвигает дату на один период с сохранением дня месяца
// (с естественным переносом: 31 января + месяц = 3 марта)
func NextCompoundingDate(d time.Time, f models.Frequency) time.Time {
	switch f {
	case models.Monthly:
		return d.AddDate(0, 1, 0)
	case models.Quarterly:
		return d.AddDate(0, 3, 0)
	default:
		return d.AddDate(1, 0, 0)
	}
}

// AddMonthsClamped сдвигает дату на n месяцев, прижимая день к концу месяца.
// Используется для годовщин: 29 февраля в невисокосный год - 28 февраля.
func AddMonthsClamped(d time.Time, n int) time.Time {
	first := time.Date(d.Year(), d.Month(), 1, d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
	first = first.AddDate(0, n, 0)
	day := min(d.Day(), daysIn(first.Year(), first.Month()))
	return first.AddDate(0, 0, day-1)
}

// PeriodsElapsed возвращает число периодов от start до периода, содержащего asOf,
// включительно. Период засчитывается, когда наступила его отметка
// (start + k периодов). До начала - 0, иначе минимум 1.
func PeriodsElapsed(start, asOf time.Time, f models.Frequency) int {
	if asOf.Before(start) {
		return 0
	}
	step := MonthsPerPeriod(f)
	k := MonthsBetween(start, asOf) / step
	periods := k
	if !dayOf(asOf).Before(dayOf(AddMonthsClamped(start, k*step))) {
		periods++
	}
	return max(periods, 1)
}

// InvestmentYear возвращает номер года жизни инвестиции (с 1).
// Год 1 длится от даты начала до дня перед первой годовщиной.
func InvestmentYear(current, start time.Time) int {
	if current.Before(start) {
		return 1
	}
	years := current.Year() - start.Year()
	anniversary := AddMonthsClamped(start, years*12)
	if !dayOf(current).Before(dayOf(anniversary)) {
		return years + 1
	}
	return max(years, 1)
}

// IsLeapYear проверяет, високосный ли год
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func daysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func dayOf(t time.Time) civil.Date {
	return civil.DateOf(t)
}
