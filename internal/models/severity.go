package models

import "strings"

// Severity - уровень серьезности пожара
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
)

// ParseSeverity разбирает ответ классификатора.
// Сначала ищем "critical", затем "major": при одновременном вхождении
// приоритет у более серьезного уровня. Если не совпало ничего - "minor".
func ParseSeverity(s string) Severity {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if strings.Contains(normalized, string(SeverityCritical)) {
		return SeverityCritical
	}
	if strings.Contains(normalized, string(SeverityMajor)) {
		return SeverityMajor
	}
	return SeverityMinor
}

// Valid проверяет, что значение входит в допустимый набор
func (s Severity) Valid() bool {
	switch s {
	case SeverityMinor, SeverityMajor, SeverityCritical:
		return true
	}
	return false
}
