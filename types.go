package yamlbind

import "fmt"

// UnknownPolicy controls how mapping keys without a matching struct field are handled.
type UnknownPolicy int

const (
	UnknownStrict UnknownPolicy = iota // Reject unknown keys with a BindingError.
	UnknownStrip                       // Drop unknown keys silently.
)

// FlowStyle selects how collections are laid out in dumped output.
type FlowStyle int

const (
	FlowBlock FlowStyle = iota // Force block style on every mapping and sequence.
	FlowAuto                   // Keep whatever the engine chose (",flow" struct tags, marshalers).
	FlowFlow                   // Force inline {...} / [...] collections.
)

// LoadOpt bundles loading options. When several are passed to a load function
// they are merged in order: non-zero fields of later options win.
type LoadOpt struct {
	Unknown UnknownPolicy
	// Constructors is the scalar constructor table used by Load/ToJSON.
	// nil selects LocalConstructors().
	Constructors Constructors
}

// DumpOpt bundles encoding options. The zero value is equivalent to DefaultDumpOpt().
type DumpOpt struct {
	// Indent is the width of nested block content (0 means 4).
	Indent int
	// IndicatorIndent is the column offset of the "-" sequence indicator relative to the
	// parent block. Only Indent-2 (compact) and Indent (wide) are supported; 0 means Indent-2.
	IndicatorIndent int
	Flow            FlowStyle
	Representer     *Representer
}

const (
	defaultIndent = 4
	minIndent     = 2
	maxIndent     = 9
)

// DefaultDumpOpt returns block style, indent 4, "-" indicator at 2.
func DefaultDumpOpt() DumpOpt {
	return DumpOpt{Indent: defaultIndent, IndicatorIndent: defaultIndent - 2, Flow: FlowBlock}
}

func (o DumpOpt) withDefaults() DumpOpt {
	if o.Indent == 0 {
		o.Indent = defaultIndent
	}
	if o.IndicatorIndent == 0 {
		o.IndicatorIndent = o.Indent - 2
	}
	return o
}

// compactSeq reports whether "- " counts as part of the indentation.
func (o DumpOpt) compactSeq() bool { return o.IndicatorIndent == o.Indent-2 }

// Validate checks the option combination after defaults are applied.
func (o DumpOpt) Validate() error {
	o = o.withDefaults()
	var iss Issues
	if o.Indent < minIndent || o.Indent > maxIndent {
		iss = AppendIssues(iss, Issue{
			Path:    "/indent",
			Code:    CodeInvalidOption,
			Message: fmt.Sprintf("indent must be between %d and %d", minIndent, maxIndent),
			Params:  map[string]any{"got": o.Indent},
		})
	}
	if o.IndicatorIndent != o.Indent-2 && o.IndicatorIndent != o.Indent {
		iss = AppendIssues(iss, Issue{
			Path:    "/indicatorIndent",
			Code:    CodeInvalidOption,
			Message: "indicator indent must equal indent-2 or indent",
			Params:  map[string]any{"got": o.IndicatorIndent, "indent": o.Indent},
		})
	}
	if o.Flow < FlowBlock || o.Flow > FlowFlow {
		iss = AppendIssues(iss, Issue{Path: "/flow", Code: CodeInvalidOption, Message: "unknown flow style"})
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// mergeLoadOpts folds opts left to right; a non-zero field in a later option
// overrides the earlier value.
func mergeLoadOpts(opts []LoadOpt) LoadOpt {
	var out LoadOpt
	for _, o := range opts {
		if o.Unknown != UnknownStrict {
			out.Unknown = o.Unknown
		}
		if o.Constructors != nil {
			out.Constructors = o.Constructors
		}
	}
	return out
}
