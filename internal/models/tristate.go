package models

import (
	"encoding/json"
	"fmt"
)

// TriState - трехзначное поле формы: да / нет / неизвестно.
// "неизвестно" нельзя схлопывать в "нет", поэтому bool не подходит.
type TriState string

const (
	TriStateUnknown TriState = "unknown"
	TriStateYes     TriState = "yes"
	TriStateNo      TriState = "no"
)

// Label возвращает текст для колонки таблицы отчетов
func (t TriState) Label() string {
	switch t {
	case TriStateYes:
		return "Yes"
	case TriStateNo:
		return "No"
	default:
		return "Unknown"
	}
}

// MarshalJSON сериализует значение; пустое значение считается "unknown"
func (t TriState) MarshalJSON() ([]byte, error) {
	if t == "" {
		return json.Marshal(string(TriStateUnknown))
	}
	return json.Marshal(string(t))
}

// UnmarshalJSON принимает null, true/false и строки "yes"/"no"/"unknown".
// Отсутствующее или null-значение остается "unknown".
func (t *TriState) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "null":
		*t = TriStateUnknown
		return nil
	case "true":
		*t = TriStateYes
		return nil
	case "false":
		*t = TriStateNo
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("tristate: invalid value %s", data)
	}
	switch TriState(s) {
	case TriStateYes, TriStateNo, TriStateUnknown:
		*t = TriState(s)
	case "":
		*t = TriStateUnknown
	default:
		return fmt.Errorf("tristate: invalid value %q", s)
	}
	return nil
}
