package reconcile

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type Action string

const (
	ActionSubmitForm        Action = "submit_form"
	ActionFetchRecords      Action = "fetch_records"
	ActionUpdateUnaccounted Action = "update_unaccounted"
)

// Request is one of SubmitForm, FetchRecords or UpdateUnaccounted.
type Request interface {
	Action() Action
}

// SubmitForm carries the six raw till figures of a shift.
type SubmitForm struct {
	OpeningMpesa float64
	OpeningCash  float64
	TotalSales   float64
	ClosingMpesa float64
	ClosingCash  float64
	Expenses     float64
}

type FetchRecords struct{}

// UpdateUnaccounted replaces the expectedDiff of record ID.
type UpdateUnaccounted struct {
	ID          uint
	Unaccounted float64
}

func (SubmitForm) Action() Action        { return ActionSubmitForm }
func (FetchRecords) Action() Action      { return ActionFetchRecords }
func (UpdateUnaccounted) Action() Action { return ActionUpdateUnaccounted }

// submitFields lists the wire names of the submit_form inputs. The second
// name is the snake_case spelling older clients send.
var submitFields = []struct {
	name, alias string
	set         func(*SubmitForm, float64)
}{
	{"openingMpesa", "opening_mpesa", func(f *SubmitForm, v float64) { f.OpeningMpesa = v }},
	{"openingCash", "opening_cash", func(f *SubmitForm, v float64) { f.OpeningCash = v }},
	{"totalSales", "total_sales", func(f *SubmitForm, v float64) { f.TotalSales = v }},
	{"closingMpesa", "closing_mpesa", func(f *SubmitForm, v float64) { f.ClosingMpesa = v }},
	{"closingCash", "closing_cash", func(f *SubmitForm, v float64) { f.ClosingCash = v }},
	{"expenses", "expenses", func(f *SubmitForm, v float64) { f.Expenses = v }},
}

// ParseRequest decodes a JSON action body into its typed request.
func ParseRequest(body []byte) (Request, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, &Error{Kind: KindInvalidAction, Message: "Action required"}
	}

	var action string
	if raw, ok := fields["action"]; ok {
		if err := json.Unmarshal(raw, &action); err != nil {
			return nil, &Error{Kind: KindInvalidAction, Message: "Invalid action"}
		}
	}

	switch Action(action) {
	case "":
		return nil, &Error{Kind: KindInvalidAction, Message: "Action required"}
	case ActionSubmitForm:
		var form SubmitForm
		for _, f := range submitFields {
			raw, ok := fields[f.name]
			if !ok {
				raw, ok = fields[f.alias]
			}
			if !ok {
				return nil, invalidInput(f.name, "%s is required", f.name)
			}
			v, err := parseNumber(f.name, raw)
			if err != nil {
				return nil, err
			}
			f.set(&form, v)
		}
		return form, nil
	case ActionFetchRecords:
		return FetchRecords{}, nil
	case ActionUpdateUnaccounted:
		id, err := parseID(fields["id"])
		if err != nil {
			return nil, err
		}
		raw, ok := fields["unaccounted"]
		if !ok {
			return nil, invalidInput("unaccounted", "unaccounted is required")
		}
		v, err := parseNumber("unaccounted", raw)
		if err != nil {
			return nil, err
		}
		return UpdateUnaccounted{ID: id, Unaccounted: v}, nil
	default:
		return nil, &Error{Kind: KindInvalidAction, Message: "Invalid action"}
	}
}

// parseNumber accepts a JSON number or a string holding one. Empty, NaN
// and infinite values are rejected.
func parseNumber(field string, raw json.RawMessage) (float64, error) {
	s, ok := scalar(raw)
	if !ok || s == "" {
		return 0, invalidInput(field, "%s must be a number", field)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalidInput(field, "%s must be a number", field)
	}
	return v, nil
}

func parseID(raw json.RawMessage) (uint, error) {
	if raw == nil {
		return 0, invalidInput("id", "id is required")
	}
	s, ok := scalar(raw)
	if !ok {
		return 0, invalidInput("id", "id is malformed")
	}
	id, err := strconv.ParseUint(s, 10, strconv.IntSize)
	if err != nil || id == 0 {
		return 0, invalidInput("id", "id is malformed")
	}
	return uint(id), nil
}

// scalar returns the trimmed text of a JSON string or number.
func scalar(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return strings.TrimSpace(s), true
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return string(raw), true
	}
	return "", false
}
