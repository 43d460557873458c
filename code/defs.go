package code

// Core is the registry for the WebAssembly 1.0 core opcode space. It covers
// every instruction whose immediate operand fits one of the five fixed
// shapes and whose stack effect fits two pop slots; br_table (variable-width
// label vector), select (three operands), and f64.const (64-bit payload) are
// decoded as special cases by the outer decoder and stay unassigned here.
// Control and variable instructions whose effect depends on declared types
// carry a void effect; the validator resolves them against the enclosing
// scope.
var Core = MustNewTable(coreDefs)

func def(code, name string, imm ImmediateKind, pop [2]Effect, push Effect) Def {
	return Def{Code: code, Name: name, Immediate: imm, Pop: pop, Push: push}
}

func op(code, name string) Def {
	return def(code, name, ImmNone, pops(), Void)
}

func opImm(code, name string, imm ImmediateKind) Def {
	return def(code, name, imm, pops(), Void)
}

// load pops an i32 address and pushes a value of type t.
func load(code, name string, t Effect) Def {
	return def(code, name, ImmMemArg, pops(I32), t)
}

// store pops an i32 address and a value of type t.
func store(code, name string, t Effect) Def {
	return def(code, name, ImmMemArg, pops(I32, t), Void)
}

func unop(code, name string, in, out Effect) Def {
	return def(code, name, ImmNone, pops(in), out)
}

func binop(code, name string, in, out Effect) Def {
	return def(code, name, ImmNone, pops(in, in), out)
}

func pops(e ...Effect) [2]Effect {
	var p [2]Effect
	copy(p[:], e)
	return p
}

var coreDefs = []Def{
	op("00", "unreachable"),
	op("01", "nop"),
	opImm("02", "block", ImmTypeTag),
	opImm("03", "loop", ImmTypeTag),
	def("04", "if", ImmTypeTag, pops(I32), Void),
	op("05", "else"),
	op("0b", "end"),
	opImm("0c", "br", ImmU32),
	def("0d", "br_if", ImmU32, pops(I32), Void),
	op("0f", "return"),
	opImm("10", "call", ImmU32),
	def("11", "call_indirect", ImmU32, pops(I32), Void),

	op("1a", "drop"),

	opImm("20", "local.get", ImmU32),
	opImm("21", "local.set", ImmU32),
	opImm("22", "local.tee", ImmU32),
	opImm("23", "global.get", ImmU32),
	opImm("24", "global.set", ImmU32),

	load("28", "i32.load", I32),
	load("29", "i64.load", I64),
	load("2a", "f32.load", F32),
	load("2b", "f64.load", F64),
	load("2c", "i32.load8_s", I32),
	load("2d", "i32.load8_u", I32),
	load("2e", "i32.load16_s", I32),
	load("2f", "i32.load16_u", I32),
	load("30", "i64.load8_s", I64),
	load("31", "i64.load8_u", I64),
	load("32", "i64.load16_s", I64),
	load("33", "i64.load16_u", I64),
	load("34", "i64.load32_s", I64),
	load("35", "i64.load32_u", I64),
	store("36", "i32.store", I32),
	store("37", "i64.store", I64),
	store("38", "f32.store", F32),
	store("39", "f64.store", F64),
	store("3a", "i32.store8", I32),
	store("3b", "i32.store16", I32),
	store("3c", "i64.store8", I64),
	store("3d", "i64.store16", I64),
	store("3e", "i64.store32", I64),
	def("3f", "memory.size", ImmNone, pops(), I32),
	def("40", "memory.grow", ImmNone, pops(I32), I32),

	def("41", "i32.const", ImmI32z, pops(), I32),
	def("42", "i64.const", ImmI32z, pops(), I64),
	def("43", "f32.const", ImmU32, pops(), F32),

	unop("45", "i32.eqz", I32, I32),
	binop("46", "i32.eq", I32, I32),
	binop("47", "i32.ne", I32, I32),
	binop("48", "i32.lt_s", I32, I32),
	binop("49", "i32.lt_u", I32, I32),
	binop("4a", "i32.gt_s", I32, I32),
	binop("4b", "i32.gt_u", I32, I32),
	binop("4c", "i32.le_s", I32, I32),
	binop("4d", "i32.le_u", I32, I32),
	binop("4e", "i32.ge_s", I32, I32),
	binop("4f", "i32.ge_u", I32, I32),

	unop("50", "i64.eqz", I64, I32),
	binop("51", "i64.eq", I64, I32),
	binop("52", "i64.ne", I64, I32),
	binop("53", "i64.lt_s", I64, I32),
	binop("54", "i64.lt_u", I64, I32),
	binop("55", "i64.gt_s", I64, I32),
	binop("56", "i64.gt_u", I64, I32),
	binop("57", "i64.le_s", I64, I32),
	binop("58", "i64.le_u", I64, I32),
	binop("59", "i64.ge_s", I64, I32),
	binop("5a", "i64.ge_u", I64, I32),

	binop("5b", "f32.eq", F32, I32),
	binop("5c", "f32.ne", F32, I32),
	binop("5d", "f32.lt", F32, I32),
	binop("5e", "f32.gt", F32, I32),
	binop("5f", "f32.le", F32, I32),
	binop("60", "f32.ge", F32, I32),

	binop("61", "f64.eq", F64, I32),
	binop("62", "f64.ne", F64, I32),
	binop("63", "f64.lt", F64, I32),
	binop("64", "f64.gt", F64, I32),
	binop("65", "f64.le", F64, I32),
	binop("66", "f64.ge", F64, I32),

	unop("67", "i32.clz", I32, I32),
	unop("68", "i32.ctz", I32, I32),
	unop("69", "i32.popcnt", I32, I32),
	binop("6a", "i32.add", I32, I32),
	binop("6b", "i32.sub", I32, I32),
	binop("6c", "i32.mul", I32, I32),
	binop("6d", "i32.div_s", I32, I32),
	binop("6e", "i32.div_u", I32, I32),
	binop("6f", "i32.rem_s", I32, I32),
	binop("70", "i32.rem_u", I32, I32),
	binop("71", "i32.and", I32, I32),
	binop("72", "i32.or", I32, I32),
	binop("73", "i32.xor", I32, I32),
	binop("74", "i32.shl", I32, I32),
	binop("75", "i32.shr_s", I32, I32),
	binop("76", "i32.shr_u", I32, I32),
	binop("77", "i32.rotl", I32, I32),
	binop("78", "i32.rotr", I32, I32),

	unop("79", "i64.clz", I64, I64),
	unop("7a", "i64.ctz", I64, I64),
	unop("7b", "i64.popcnt", I64, I64),
	binop("7c", "i64.add", I64, I64),
	binop("7d", "i64.sub", I64, I64),
	binop("7e", "i64.mul", I64, I64),
	binop("7f", "i64.div_s", I64, I64),
	binop("80", "i64.div_u", I64, I64),
	binop("81", "i64.rem_s", I64, I64),
	binop("82", "i64.rem_u", I64, I64),
	binop("83", "i64.and", I64, I64),
	binop("84", "i64.or", I64, I64),
	binop("85", "i64.xor", I64, I64),
	binop("86", "i64.shl", I64, I64),
	binop("87", "i64.shr_s", I64, I64),
	binop("88", "i64.shr_u", I64, I64),
	binop("89", "i64.rotl", I64, I64),
	binop("8a", "i64.rotr", I64, I64),

	unop("8b", "f32.abs", F32, F32),
	unop("8c", "f32.neg", F32, F32),
	unop("8d", "f32.ceil", F32, F32),
	unop("8e", "f32.floor", F32, F32),
	unop("8f", "f32.trunc", F32, F32),
	unop("90", "f32.nearest", F32, F32),
	unop("91", "f32.sqrt", F32, F32),
	binop("92", "f32.add", F32, F32),
	binop("93", "f32.sub", F32, F32),
	binop("94", "f32.mul", F32, F32),
	binop("95", "f32.div", F32, F32),
	binop("96", "f32.min", F32, F32),
	binop("97", "f32.max", F32, F32),
	binop("98", "f32.copysign", F32, F32),

	unop("99", "f64.abs", F64, F64),
	unop("9a", "f64.neg", F64, F64),
	unop("9b", "f64.ceil", F64, F64),
	unop("9c", "f64.floor", F64, F64),
	unop("9d", "f64.trunc", F64, F64),
	unop("9e", "f64.nearest", F64, F64),
	unop("9f", "f64.sqrt", F64, F64),
	binop("a0", "f64.add", F64, F64),
	binop("a1", "f64.sub", F64, F64),
	binop("a2", "f64.mul", F64, F64),
	binop("a3", "f64.div", F64, F64),
	binop("a4", "f64.min", F64, F64),
	binop("a5", "f64.max", F64, F64),
	binop("a6", "f64.copysign", F64, F64),

	unop("a7", "i32.wrap_i64", I64, I32),
	unop("a8", "i32.trunc_f32_s", F32, I32),
	unop("a9", "i32.trunc_f32_u", F32, I32),
	unop("aa", "i32.trunc_f64_s", F64, I32),
	unop("ab", "i32.trunc_f64_u", F64, I32),
	unop("ac", "i64.extend_i32_s", I32, I64),
	unop("ad", "i64.extend_i32_u", I32, I64),
	unop("ae", "i64.trunc_f32_s", F32, I64),
	unop("af", "i64.trunc_f32_u", F32, I64),
	unop("b0", "i64.trunc_f64_s", F64, I64),
	unop("b1", "i64.trunc_f64_u", F64, I64),
	unop("b2", "f32.convert_i32_s", I32, F32),
	unop("b3", "f32.convert_i32_u", I32, F32),
	unop("b4", "f32.convert_i64_s", I64, F32),
	unop("b5", "f32.convert_i64_u", I64, F32),
	unop("b6", "f32.demote_f64", F64, F32),
	unop("b7", "f64.convert_i32_s", I32, F64),
	unop("b8", "f64.convert_i32_u", I32, F64),
	unop("b9", "f64.convert_i64_s", I64, F64),
	unop("ba", "f64.convert_i64_u", I64, F64),
	unop("bb", "f64.promote_f32", F32, F64),
	unop("bc", "i32.reinterpret_f32", F32, I32),
	unop("bd", "i64.reinterpret_f64", F64, I64),
	unop("be", "f32.reinterpret_i32", I32, F32),
	unop("bf", "f64.reinterpret_i64", I64, F64),

	unop("c0", "i32.extend8_s", I32, I32),
	unop("c1", "i32.extend16_s", I32, I32),
	unop("c2", "i64.extend8_s", I64, I64),
	unop("c3", "i64.extend16_s", I64, I64),
	unop("c4", "i64.extend32_s", I64, I64),
}
