package symbol

// Builtins holds the fixed, pre-interned symbols every Cool program's
// analysis depends on (spec.md §3), so callers never have to remember
// to intern "Object" or "SELF_TYPE" themselves before comparing against
// them by pointer.
type Builtins struct {
	Object    *Symbol
	IO        *Symbol
	Int       *Symbol
	Bool      *Symbol
	String    *Symbol
	SelfType  *Symbol
	NoClass   *Symbol
	PrimSlot  *Symbol
	Self      *Symbol
	Main      *Symbol
	MainMeth  *Symbol
	Val       *Symbol
	StrField  *Symbol
	Length    *Symbol
	Concat    *Symbol
	Substr    *Symbol
	Abort     *Symbol
	TypeName  *Symbol
	Copy      *Symbol
	OutString *Symbol
	OutInt    *Symbol
	InString  *Symbol
	InInt     *Symbol
	Arg       *Symbol
	Arg2      *Symbol
}

// NewTableWithBuiltins creates a Table with every fixed Cool symbol
// already interned, mirroring original_source/semant.cc's
// initialize_constants.
func NewTableWithBuiltins() (*Table, *Builtins) {
	t := NewTable()
	b := &Builtins{
		Object:    t.Intern("Object"),
		IO:        t.Intern("IO"),
		Int:       t.Intern("Int"),
		Bool:      t.Intern("Bool"),
		String:    t.Intern("String"),
		SelfType:  t.Intern("SELF_TYPE"),
		NoClass:   t.Intern("_no_class"),
		PrimSlot:  t.Intern("_prim_slot"),
		Self:      t.Intern("self"),
		Main:      t.Intern("Main"),
		MainMeth:  t.Intern("main"),
		Val:       t.Intern("_val"),
		StrField:  t.Intern("_str_field"),
		Length:    t.Intern("length"),
		Concat:    t.Intern("concat"),
		Substr:    t.Intern("substr"),
		Abort:     t.Intern("abort"),
		TypeName:  t.Intern("type_name"),
		Copy:      t.Intern("copy"),
		OutString: t.Intern("out_string"),
		OutInt:    t.Intern("out_int"),
		InString:  t.Intern("in_string"),
		InInt:     t.Intern("in_int"),
		Arg:       t.Intern("arg"),
		Arg2:      t.Intern("arg2"),
	}
	return t, b
}
