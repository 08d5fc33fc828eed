// Package hookgen generates JavaScript hook stubs for instrumented
// WebAssembly instructions.
//
// Each instruction belongs to a Group (constant, unary, binary, memory load,
// memory store, or a multi-value return). The generated stub receives the
// instruction's operands and results as plain JavaScript numbers. JavaScript
// has no 64-bit integer number type, so every i64 operand arrives as two i32
// halves named <name>_low and <name>_high and is rebuilt with
// new Long(<name>_low, <name>_high) before the stub forwards to the runtime
// hook:
//
//	i64_add: function (func, instr, first_low, first_high, second_low, second_high, result_low, result_high) {
//	    binary({func, instr}, "i64.add", new Long(first_low, first_high), new Long(second_low, second_high), new Long(result_low, result_high));
//	},
//
// Generation is a pure function of its input: there is no shared state and
// stubs can be produced in any order.
package hookgen
