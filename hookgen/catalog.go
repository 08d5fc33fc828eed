package hookgen

import "github.com/tetratelabs/wazero/api"

const (
	i32 = api.ValueTypeI32
	i64 = api.ValueTypeI64
	f32 = api.ValueTypeF32
	f64 = api.ValueTypeF64
)

// Catalog returns the numeric core instructions with a fixed hook shape:
// constants, unary and binary numeric operators, conversions, loads and stores.
// Return hooks depend on the function signature and are not part of it; use
// PolyHook for those.
func Catalog() []Instr {
	var out []Instr

	for _, t := range []api.ValueType{i32, i64, f32, f64} {
		out = append(out, Instr{Name: api.ValueTypeName(t) + ".const", Group: GroupConst, Results: []api.ValueType{t}})
	}

	unary := func(name string, in, res api.ValueType) {
		out = append(out, Instr{Name: name, Group: GroupUnary, Inputs: []api.ValueType{in}, Results: []api.ValueType{res}})
	}
	unary("i32.eqz", i32, i32)
	unary("i64.eqz", i64, i32)
	for _, op := range []string{"clz", "ctz", "popcnt"} {
		unary("i32."+op, i32, i32)
		unary("i64."+op, i64, i64)
	}
	for _, op := range []string{"abs", "neg", "ceil", "floor", "trunc", "nearest", "sqrt"} {
		unary("f32."+op, f32, f32)
		unary("f64."+op, f64, f64)
	}
	unary("i32.wrap_i64", i64, i32)
	unary("i64.extend_i32_s", i32, i64)
	unary("i64.extend_i32_u", i32, i64)
	for _, sign := range []string{"s", "u"} {
		unary("i32.trunc_f32_"+sign, f32, i32)
		unary("i32.trunc_f64_"+sign, f64, i32)
		unary("i64.trunc_f32_"+sign, f32, i64)
		unary("i64.trunc_f64_"+sign, f64, i64)
		unary("f32.convert_i32_"+sign, i32, f32)
		unary("f32.convert_i64_"+sign, i64, f32)
		unary("f64.convert_i32_"+sign, i32, f64)
		unary("f64.convert_i64_"+sign, i64, f64)
	}
	unary("f32.demote_f64", f64, f32)
	unary("f64.promote_f32", f32, f64)
	unary("i32.reinterpret_f32", f32, i32)
	unary("i64.reinterpret_f64", f64, i64)
	unary("f32.reinterpret_i32", i32, f32)
	unary("f64.reinterpret_i64", i64, f64)

	binary := func(name string, operand, res api.ValueType) {
		out = append(out, Instr{Name: name, Group: GroupBinary, Inputs: []api.ValueType{operand, operand}, Results: []api.ValueType{res}})
	}
	for _, t := range []api.ValueType{i32, i64} {
		prefix := api.ValueTypeName(t) + "."
		for _, op := range []string{"eq", "ne", "lt_s", "lt_u", "gt_s", "gt_u", "le_s", "le_u", "ge_s", "ge_u"} {
			binary(prefix+op, t, i32)
		}
		for _, op := range []string{"add", "sub", "mul", "div_s", "div_u", "rem_s", "rem_u", "and", "or", "xor", "shl", "shr_s", "shr_u", "rotl", "rotr"} {
			binary(prefix+op, t, t)
		}
	}
	for _, t := range []api.ValueType{f32, f64} {
		prefix := api.ValueTypeName(t) + "."
		for _, op := range []string{"eq", "ne", "lt", "gt", "le", "ge"} {
			binary(prefix+op, t, i32)
		}
		for _, op := range []string{"add", "sub", "mul", "div", "min", "max", "copysign"} {
			binary(prefix+op, t, t)
		}
	}

	load := func(name string, t api.ValueType) {
		out = append(out, Instr{Name: name, Group: GroupLoad, Results: []api.ValueType{t}})
	}
	store := func(name string, t api.ValueType) {
		out = append(out, Instr{Name: name, Group: GroupStore, Inputs: []api.ValueType{t}})
	}
	for _, t := range []api.ValueType{i32, i64, f32, f64} {
		load(api.ValueTypeName(t)+".load", t)
		store(api.ValueTypeName(t)+".store", t)
	}
	for _, n := range []string{"8", "16"} {
		load("i32.load"+n+"_s", i32)
		load("i32.load"+n+"_u", i32)
		store("i32.store"+n, i32)
	}
	for _, n := range []string{"8", "16", "32"} {
		load("i64.load"+n+"_s", i64)
		load("i64.load"+n+"_u", i64)
		store("i64.store"+n, i64)
	}

	return out
}
