package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"execexam/internal/domain"
)

// JSONParser reads the pytest-json-report document and the assertion
// stream written by the execexam pytest plugin.
type JSONParser struct{}

// NewJSONParser creates a new JSONParser
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

type object map[string]json.RawMessage

func decodeObject(data []byte, where string) (object, error) {
	var obj object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, invalid("object", where, err)
	}
	if obj == nil {
		return nil, invalid("object", where, fmt.Errorf("null"))
	}
	return obj, nil
}

func (o object) require(key, where string) (json.RawMessage, error) {
	raw, ok := o[key]
	if !ok {
		return nil, missing(key, where)
	}
	return raw, nil
}

func (o object) str(key, where string) (string, error) {
	raw, err := o.require(key, where)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", invalid(key, where, err)
	}
	return s, nil
}

// ParseRunReport decodes and validates a pytest-json-report document.
// "root", "summary" and "tests" are required, as are "nodeid" and "outcome"
// on every test and "call.crash.lineno"/"call.crash.message" on failed ones.
func (p *JSONParser) ParseRunReport(data []byte) (*domain.TestRunReport, error) {
	doc, err := decodeObject(data, "report")
	if err != nil {
		return nil, err
	}

	root, err := doc.str("root", "report")
	if err != nil {
		return nil, err
	}

	rawSummary, err := doc.require("summary", "report")
	if err != nil {
		return nil, err
	}
	summary, err := parseSummary(rawSummary)
	if err != nil {
		return nil, err
	}

	rawTests, err := doc.require("tests", "report")
	if err != nil {
		return nil, err
	}
	var items []json.RawMessage
	if err := json.Unmarshal(rawTests, &items); err != nil {
		return nil, invalid("tests", "report", err)
	}

	tests := make([]domain.TestRecord, 0, len(items))
	for i, item := range items {
		record, err := parseTestRecord(item, fmt.Sprintf("tests[%d]", i))
		if err != nil {
			return nil, err
		}
		tests = append(tests, record)
	}

	return &domain.TestRunReport{
		Root:    root,
		Summary: summary,
		Tests:   tests,
	}, nil
}

// parseSummary keeps the key order of the summary object.
func parseSummary(raw json.RawMessage) ([]domain.Count, error) {
	var counts []domain.Count
	err := walkObject(raw, func(key string, value json.RawMessage) error {
		var n int
		if err := json.Unmarshal(value, &n); err != nil {
			return invalid(key, "summary", err)
		}
		counts = append(counts, domain.Count{Category: key, Count: n})
		return nil
	})
	if err != nil {
		var malformed *MalformedReportError
		if errors.As(err, &malformed) {
			return nil, err
		}
		return nil, invalid("summary", "report", err)
	}
	return counts, nil
}

func parseTestRecord(raw json.RawMessage, where string) (domain.TestRecord, error) {
	obj, err := decodeObject(raw, where)
	if err != nil {
		return domain.TestRecord{}, err
	}

	record := domain.TestRecord{}
	if record.NodeID, err = obj.str("nodeid", where); err != nil {
		return record, err
	}
	if record.Outcome, err = obj.str("outcome", where); err != nil {
		return record, err
	}
	if record.Outcome != domain.OutcomeFailed {
		return record, nil
	}

	rawCall, err := obj.require("call", where)
	if err != nil {
		return record, err
	}
	callWhere := where + ".call"
	call, err := decodeObject(rawCall, callWhere)
	if err != nil {
		return record, err
	}
	rawCrash, err := call.require("crash", callWhere)
	if err != nil {
		return record, err
	}
	crashWhere := callWhere + ".crash"
	crash, err := decodeObject(rawCrash, crashWhere)
	if err != nil {
		return record, err
	}

	rawLine, err := crash.require("lineno", crashWhere)
	if err != nil {
		return record, err
	}
	var info domain.CrashInfo
	if err := json.Unmarshal(rawLine, &info.LineNo); err != nil {
		return record, invalid("lineno", crashWhere, err)
	}
	if info.Message, err = crash.str("message", crashWhere); err != nil {
		return record, err
	}

	record.Call = &domain.CallInfo{Crash: info}
	return record, nil
}

// ParseAssertionReports decodes the assertion stream. It accepts either a
// JSON array of reports or one report object per line.
func (p *JSONParser) ParseAssertionReports(data []byte) ([]domain.AssertionReport, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	var items []json.RawMessage
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, invalid("assertions", "stream", err)
		}
	} else {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		for {
			var item json.RawMessage
			if err := dec.Decode(&item); err == io.EOF {
				break
			} else if err != nil {
				return nil, invalid("assertions", "stream", err)
			}
			items = append(items, item)
		}
	}

	reports := make([]domain.AssertionReport, 0, len(items))
	for i, item := range items {
		report, err := parseAssertionReport(item, fmt.Sprintf("assertions[%d]", i))
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func parseAssertionReport(raw json.RawMessage, where string) (domain.AssertionReport, error) {
	obj, err := decodeObject(raw, where)
	if err != nil {
		return domain.AssertionReport{}, err
	}

	report := domain.AssertionReport{}
	if report.NodeID, err = obj.str("nodeid", where); err != nil {
		return report, err
	}

	rawAssertions, ok := obj["assertions"]
	if !ok || string(rawAssertions) == "null" {
		return report, nil
	}
	var records []json.RawMessage
	if err := json.Unmarshal(rawAssertions, &records); err != nil {
		return report, invalid("assertions", where, err)
	}

	for _, rec := range records {
		var record domain.AssertionRecord
		err := walkObject(rec, func(key string, value json.RawMessage) error {
			record = append(record, domain.Field{Key: key, Value: displayValue(value)})
			return nil
		})
		if err != nil {
			return report, invalid("assertions", where, err)
		}
		report.Assertions = append(report.Assertions, record)
	}
	return report, nil
}
