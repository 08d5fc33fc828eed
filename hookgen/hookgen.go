package hookgen

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasm-instrument/errors"
)

// Group classifies an instruction by the shape of its hook.
type Group int

const (
	GroupConst Group = iota + 1
	GroupUnary
	GroupBinary
	GroupLoad
	GroupStore
	GroupReturn
)

func (g Group) String() string {
	switch g {
	case GroupConst:
		return "const"
	case GroupUnary:
		return "unary"
	case GroupBinary:
		return "binary"
	case GroupLoad:
		return "load"
	case GroupStore:
		return "store"
	case GroupReturn:
		return "return"
	}
	return "group(" + strconv.Itoa(int(g)) + ")"
}

// Instr describes one instruction to generate a hook for.
//
// Inputs and Results follow the group:
//
//	GroupConst   Results: [value]
//	GroupUnary   Inputs: [input]            Results: [result]
//	GroupBinary  Inputs: [first, second]    Results: [result]
//	GroupLoad    Results: [loaded value]
//	GroupStore   Inputs: [stored value]
//	GroupReturn  Results: any number of returned values
type Instr struct {
	Name    string
	Group   Group
	Inputs  []api.ValueType
	Results []api.ValueType
}

// HookName returns the JavaScript identifier of the instruction's hook.
// Return hooks are monomorphized on their result types, e.g. "return_i32_i64".
func (in Instr) HookName() string {
	name := identifier(in.Name)
	if in.Group == GroupReturn {
		for _, t := range in.Results {
			name += "_" + api.ValueTypeName(t)
		}
	}
	return name
}

type operand struct {
	name string
	typ  api.ValueType
}

// Param is the operand as it appears in the stub's parameter list.
func (o operand) Param() string {
	if o.typ == api.ValueTypeI64 {
		return o.name + "_low, " + o.name + "_high"
	}
	return o.name
}

// Arg is the operand as it is forwarded to the runtime hook.
func (o operand) Arg() string {
	if o.typ == api.ValueTypeI64 {
		return "new Long(" + o.Param() + ")"
	}
	return o.name
}

type hookData struct {
	Hook     string
	Op       string
	Operands []operand
}

func (d hookData) Params() string {
	parts := make([]string, len(d.Operands))
	for i, o := range d.Operands {
		parts[i] = o.Param()
	}
	return strings.Join(parts, ", ")
}

func (d hookData) Args() string {
	parts := make([]string, len(d.Operands))
	for i, o := range d.Operands {
		parts[i] = o.Arg()
	}
	return strings.Join(parts, ", ")
}

var templates = template.Must(template.New("hooks").Parse(`
{{- define "const" -}}
{{.Hook}}: function (func, instr, {{.Params}}) {
    const_({func, instr}, {{.Args}});
},
{{- end}}

{{- define "unary" -}}
{{.Hook}}: function (func, instr, {{.Params}}) {
    unary({func, instr}, "{{.Op}}", {{.Args}});
},
{{- end}}

{{- define "binary" -}}
{{.Hook}}: function (func, instr, {{.Params}}) {
    binary({func, instr}, "{{.Op}}", {{.Args}});
},
{{- end}}

{{- define "load" -}}
{{.Hook}}: function (func, instr, addr, offset, align, {{.Params}}) {
    load({func, instr}, "{{.Op}}", {addr, offset, align}, {{.Args}});
},
{{- end}}

{{- define "store" -}}
{{.Hook}}: function (func, instr, addr, offset, align, {{.Params}}) {
    store({func, instr}, "{{.Op}}", {addr, offset, align}, {{.Args}});
},
{{- end}}

{{- define "return" -}}
{{.Hook}}: function (func, instr{{if .Operands}}, {{.Params}}{{end}}) {
    return_({func, instr}, [{{.Args}}]);
},
{{- end}}
`))

// Hook returns the JavaScript stub for in.
func Hook(in Instr) (string, error) {
	var b strings.Builder
	if err := writeHook(&b, in); err != nil {
		return "", err
	}
	return b.String(), nil
}

// PolyHook returns the stub of a return instruction producing results.
func PolyHook(name string, results []api.ValueType) (string, error) {
	return Hook(Instr{Name: name, Group: GroupReturn, Results: results})
}

// Generate writes the stubs of all instructions to w, one per line group.
// Duplicate hook names are written once.
func Generate(w io.Writer, instrs []Instr) error {
	seen := make(map[string]bool, len(instrs))
	for _, in := range instrs {
		name := in.HookName()
		if seen[name] {
			continue
		}
		seen[name] = true
		if err := writeHook(w, in); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return errors.Wrap(errors.PhaseGenerate, errors.KindSink, err, "write hook "+name)
		}
	}
	return nil
}

func writeHook(w io.Writer, in Instr) error {
	data, err := prepare(in)
	if err != nil {
		return err
	}
	if err := templates.ExecuteTemplate(w, in.Group.String(), data); err != nil {
		return errors.Wrap(errors.PhaseGenerate, errors.KindSink, err, "write hook "+data.Hook)
	}
	return nil
}

func prepare(in Instr) (hookData, error) {
	if in.Name == "" {
		return hookData{}, errors.InvalidInput(errors.PhaseGenerate, "instruction without a name")
	}
	var names []string
	var types []api.ValueType
	switch in.Group {
	case GroupConst:
		if err := arity(in, 0, 1); err != nil {
			return hookData{}, err
		}
		names, types = []string{"v"}, in.Results
	case GroupUnary:
		if err := arity(in, 1, 1); err != nil {
			return hookData{}, err
		}
		names, types = []string{"input", "result"}, concat(in.Inputs, in.Results)
	case GroupBinary:
		if err := arity(in, 2, 1); err != nil {
			return hookData{}, err
		}
		names, types = []string{"first", "second", "result"}, concat(in.Inputs, in.Results)
	case GroupLoad:
		if err := arity(in, 0, 1); err != nil {
			return hookData{}, err
		}
		names, types = []string{"v"}, in.Results
	case GroupStore:
		if err := arity(in, 1, 0); err != nil {
			return hookData{}, err
		}
		names, types = []string{"v"}, in.Inputs
	case GroupReturn:
		if len(in.Inputs) != 0 {
			return hookData{}, arityError(in)
		}
		types = in.Results
		names = make([]string, len(types))
		for i := range types {
			names[i] = "result" + strconv.Itoa(i)
		}
	default:
		return hookData{}, errors.Unsupported(errors.PhaseGenerate,
			fmt.Sprintf("cannot generate hook for %s (%s)", in.Name, in.Group))
	}

	data := hookData{Hook: in.HookName(), Op: in.Name}
	for i, t := range types {
		if !numeric(t) {
			return hookData{}, errors.New(errors.PhaseGenerate, errors.KindUnsupported).
				Detail("%s: value type %s has no hook representation", in.Name, api.ValueTypeName(t)).
				Value(t).
				Build()
		}
		data.Operands = append(data.Operands, operand{name: names[i], typ: t})
	}
	return data, nil
}

func arity(in Instr, inputs, results int) error {
	if len(in.Inputs) != inputs || len(in.Results) != results {
		return arityError(in)
	}
	return nil
}

func arityError(in Instr) error {
	return errors.InvalidInput(errors.PhaseGenerate, fmt.Sprintf(
		"%s: %s hook cannot take %d input(s) and %d result(s)",
		in.Name, in.Group, len(in.Inputs), len(in.Results)))
}

func numeric(t api.ValueType) bool {
	switch t {
	case api.ValueTypeI32, api.ValueTypeI64, api.ValueTypeF32, api.ValueTypeF64:
		return true
	}
	return false
}

func concat(a, b []api.ValueType) []api.ValueType {
	out := make([]api.ValueType, 0, len(a)+len(b))
	return append(append(out, a...), b...)
}

// identifier maps a mnemonic such as "i32.trunc_f32_s" to "i32_trunc_f32_s".
func identifier(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '$':
			return r
		}
		return '_'
	}, name)
}
