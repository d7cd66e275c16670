package yamlbind

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/yamlbind/i18n"
	"go.yaml.in/yaml/v3"
)

// Issue codes
const (
	CodeParseError      = "parse_error"
	CodeDuplicateKey    = "duplicate_key"
	CodeUnknownKey      = "unknown_key"
	CodeInvalidType     = "invalid_type"
	CodeInvalidFormat   = "invalid_format"
	CodeUnrepresentable = "unrepresentable"
	CodeInvalidOption   = "invalid_option"
)

// Issue represents a single load/dump problem.
type Issue struct {
	Path    string // JSON Pointer when known (for example: /hosts/0/items/1/startDate).
	Code    string // One of the codes listed above.
	Message string
	Line    int // 1-based source line (0 when unknown).
	Column  int // 1-based source column (0 when unknown).
	Cause   error
	// Params carries structured parameters (e.g., {"got": 7}) for i18n.
	Params map[string]any
}

// Issues is a collection of problems that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		switch {
		case it.Line > 0:
			fmt.Fprintf(b, "%s at line %d", it.Code, it.Line)
		case it.Path != "":
			fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		default:
			b.WriteString(it.Code)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Localize returns a copy of the issues with messages rendered by tr.
func (iss Issues) Localize(tr i18n.Translator) Issues {
	out := make(Issues, len(iss))
	for i, it := range iss {
		var data map[string]string
		if len(it.Params) > 0 {
			data = make(map[string]string, len(it.Params))
			for k, v := range it.Params {
				data[k] = fmt.Sprint(v)
			}
		}
		it.Message = tr.Message(it.Code, data)
		out[i] = it
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// ParseError reports a document that is not well-formed YAML.
type ParseError struct {
	Issues Issues
	Cause  error
}

func (e *ParseError) Error() string { return errorText(e.Cause, e.Issues) }
func (e *ParseError) Unwrap() error { return e.Cause }

// BindingError reports a mismatch between the document shape and the target type.
type BindingError struct {
	Issues Issues
	Cause  error
}

func (e *BindingError) Error() string { return errorText(e.Cause, e.Issues) }
func (e *BindingError) Unwrap() error { return e.Cause }

// RepresentationError reports a value that has no applicable YAML encoding.
type RepresentationError struct {
	Issues Issues
	Cause  error
}

func (e *RepresentationError) Error() string { return errorText(e.Cause, e.Issues) }
func (e *RepresentationError) Unwrap() error { return e.Cause }

func errorText(cause error, iss Issues) string {
	if cause != nil {
		return cause.Error()
	}
	return iss.Error()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var (
		pe *ParseError
		be *BindingError
		re *RepresentationError
	)
	switch {
	case errors.As(err, &pe):
		return pe.Issues, true
	case errors.As(err, &be):
		return be.Issues, true
	case errors.As(err, &re):
		return re.Issues, true
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// classifyLoadError sorts an engine error into ParseError or BindingError.
// Duplicate keys are a ParseError on every load path; they only join a
// BindingError when other binding issues are reported with them.
// The engine error stays reachable through Unwrap.
func classifyLoadError(err error) error {
	if err == nil {
		return nil
	}
	var (
		pe *ParseError
		be *BindingError
	)
	if errors.As(err, &pe) || errors.As(err, &be) {
		return err
	}
	var te *yaml.TypeError
	if errors.As(err, &te) {
		iss := make(Issues, 0, len(te.Errors))
		for _, msg := range te.Errors {
			line, rest := splitLinePrefix(msg)
			iss = append(iss, Issue{Code: typeErrorCode(rest), Message: rest, Line: line})
		}
		if allDuplicateKeys(iss) {
			return &ParseError{Issues: iss, Cause: err}
		}
		return &BindingError{Issues: iss, Cause: err}
	}
	var de *DuplicateKeyError
	if errors.As(err, &de) {
		return &ParseError{
			Issues: Issues{{Code: CodeDuplicateKey, Message: de.Error(), Line: de.Line, Column: de.Col, Cause: de}},
			Cause:  err,
		}
	}
	line, rest := splitLinePrefix(strings.TrimPrefix(err.Error(), "yaml: "))
	return &ParseError{Issues: Issues{{Code: CodeParseError, Message: rest, Line: line}}, Cause: err}
}

func representationError(err error) error {
	var re *RepresentationError
	if errors.As(err, &re) {
		return err
	}
	return &RepresentationError{
		Issues: Issues{{Code: CodeUnrepresentable, Message: strings.TrimPrefix(err.Error(), "yaml: ")}},
		Cause:  err,
	}
}

// splitLinePrefix strips a leading "line N: " as written by the engine.
func splitLinePrefix(msg string) (int, string) {
	rest, ok := strings.CutPrefix(msg, "line ")
	if !ok {
		return 0, msg
	}
	num, tail, ok := strings.Cut(rest, ": ")
	if !ok {
		return 0, msg
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, msg
	}
	return n, tail
}

func allDuplicateKeys(iss Issues) bool {
	for _, it := range iss {
		if it.Code != CodeDuplicateKey {
			return false
		}
	}
	return len(iss) > 0
}

func typeErrorCode(msg string) string {
	switch {
	case strings.HasPrefix(msg, "field ") && strings.Contains(msg, " not found in type "):
		return CodeUnknownKey
	case strings.Contains(msg, "already set in type"), strings.Contains(msg, "already defined"):
		return CodeDuplicateKey
	default:
		return CodeInvalidType
	}
}
