package ir

import "strconv"

// PayloadShape tags which payload variant a clause carries, so consumers
// switch on a closed enum instead of type-asserting blindly.
type PayloadShape uint8

const (
	ShapeBare PayloadShape = iota
	ShapeExpr
	ShapeExprList
	ShapeItems
	ShapeIf
	ShapeDefault
	ShapeReduction
	ShapeMap
	ShapeSchedule
	ShapeDistSchedule
	ShapeDepend
	ShapeLinear
	ShapeAligned
	ShapeLastprivate
	ShapeProcBind
	ShapeOrder
	ShapeMemOrder
	ShapeDeviceType
	ShapeBind
	ShapeDefaultmap
	ShapeAllocate
	ShapeAccParallelism
	ShapeAccData
	ShapeWhen
	ShapeOtherwise
)

var shapeNames = [...]string{
	ShapeBare:           "bare",
	ShapeExpr:           "expr",
	ShapeExprList:       "expr-list",
	ShapeItems:          "items",
	ShapeIf:             "if",
	ShapeDefault:        "default",
	ShapeReduction:      "reduction",
	ShapeMap:            "map",
	ShapeSchedule:       "schedule",
	ShapeDistSchedule:   "dist-schedule",
	ShapeDepend:         "depend",
	ShapeLinear:         "linear",
	ShapeAligned:        "aligned",
	ShapeLastprivate:    "lastprivate",
	ShapeProcBind:       "proc-bind",
	ShapeOrder:          "order",
	ShapeMemOrder:       "mem-order",
	ShapeDeviceType:     "device-type",
	ShapeBind:           "bind",
	ShapeDefaultmap:     "defaultmap",
	ShapeAllocate:       "allocate",
	ShapeAccParallelism: "acc-parallelism",
	ShapeAccData:        "acc-data",
	ShapeWhen:           "when",
	ShapeOtherwise:      "otherwise",
}

func (s PayloadShape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "shape(" + strconv.Itoa(int(s)) + ")"
}

// Clause is one parsed clause. Data is nil for bare clauses and for
// flexible clauses written without an argument.
type Clause struct {
	Kind ClauseKind
	Data ClauseData
}

// Shape reports the payload variant present on the clause.
func (c Clause) Shape() PayloadShape {
	if c.Data == nil {
		return ShapeBare
	}
	return c.Data.Shape()
}

// ClauseData is the sealed set of typed clause payloads. Implementations
// live in this package only; consumers inspect Shape and assert to the
// matching *Arg type.
type ClauseData interface {
	Shape() PayloadShape
	clauseData()
}

// ExprArg carries a single expression argument (num_threads, collapse,
// safelen, final, hint, priority, num_gangs, vector_length, ...).
type ExprArg struct {
	X Expression
}

// ExprList carries a comma-separated expression list (tile and sizes
// arguments, wait queues, num_teams low:high bounds).
type ExprList struct {
	List []Expression
}

// ItemList carries a plain variable list (private, shared, copyin,
// deviceptr, ...). Duplicates and order are preserved unless a
// normalization mode merges them.
type ItemList struct {
	Items []Variable
}

// IfArg is an if clause: optional directive-name modifier plus the
// guarding condition.
type IfArg struct {
	DirectiveName string
	Cond          Expression
}

// DefaultArg is a data-sharing default. Metadirective-style
// default(<directive>) payloads parse as OtherwiseArg instead.
type DefaultArg struct {
	Kind DefaultKind
}

// ReductionArg covers reduction, in_reduction and task_reduction.
// Custom holds the identifier of a user-declared operator when Op is
// ReduceCustom.
type ReductionArg struct {
	Modifier    ReductionModifier
	HasModifier bool
	Op          ReductionOperator
	Custom      string
	Items       []Variable
}

// MapArg is a map clause. HasType distinguishes map(x) from
// map(tofrom: x).
type MapArg struct {
	Modifiers []MapModifier
	Type      MapType
	HasType   bool
	Items     []Variable
}

// ScheduleArg is a schedule clause with optional ordering modifiers and
// chunk size.
type ScheduleArg struct {
	Modifiers []ScheduleModifier
	Kind      ScheduleKind
	Chunk     *Expression
}

// DistScheduleArg is a dist_schedule clause.
type DistScheduleArg struct {
	Kind  ScheduleKind
	Chunk *Expression
}

// DependArg is a depend clause; sink offsets stay in Items as written.
type DependArg struct {
	Type  DependType
	Items []Variable
}

// LinearArg is a linear clause in either the plain or the
// modifier(list) form.
type LinearArg struct {
	Modifier    LinearModifier
	HasModifier bool
	Items       []Variable
	Step        *Expression
}

// AlignedArg is an aligned clause with optional alignment expression.
type AlignedArg struct {
	Items     []Variable
	Alignment *Expression
}

// LastprivateArg is a lastprivate clause with the optional conditional
// modifier.
type LastprivateArg struct {
	Conditional bool
	Items       []Variable
}

// ProcBindArg is a proc_bind clause.
type ProcBindArg struct {
	Kind ProcBindKind
}

// OrderArg is an order clause with the optional reproducible or
// unconstrained prefix.
type OrderArg struct {
	Modifier    OrderModifier
	HasModifier bool
	Kind        OrderKind
}

// MemOrderArg is the argument of atomic_default_mem_order.
type MemOrderArg struct {
	Order MemoryOrder
}

// DeviceTypeArg is a device_type clause.
type DeviceTypeArg struct {
	Kind DeviceTypeKind
}

// BindArg is a loop construct's bind clause.
type BindArg struct {
	Binding BindKind
}

// DefaultmapArg is a defaultmap clause; HasCategory distinguishes
// defaultmap(tofrom) from defaultmap(tofrom: scalar).
type DefaultmapArg struct {
	Behavior    DefaultmapBehavior
	Category    DefaultmapCategory
	HasCategory bool
}

// AllocateArg is an allocate clause with an optional allocator prefix.
type AllocateArg struct {
	Allocator *Expression
	Items     []Variable
}

// AccParallelismArg covers OpenACC gang, worker and vector arguments,
// keyed by the num:, static:, length: and dim: tags. Untagged arguments
// land in the field the clause defaults to.
type AccParallelismArg struct {
	Num    *Expression
	Static *Expression
	Length *Expression
	Dim    *Expression
}

// AccDataArg is an OpenACC data clause with the optional readonly: or
// zero: prefix.
type AccDataArg struct {
	Modifier    AccDataModifier
	HasModifier bool
	Items       []Variable
}

// TraitSelector is one selector inside a trait set: an open identifier
// with optional property expressions (kind(gpu), vendor(llvm)).
type TraitSelector struct {
	Name  string
	Props []Expression
}

// TraitSet is one name={...} group of a context selector.
type TraitSet struct {
	Set       TraitSetName
	Selectors []TraitSelector
}

// WhenArg is a metadirective when clause: the selector tree plus the
// directive variant chosen when it matches. Directive is nil for an
// explicit empty variant, and the whole selector list is empty for a
// match clause payload reusing this shape.
type WhenArg struct {
	Selectors []TraitSet
	Directive *DirectiveIR
}

// OtherwiseArg is a metadirective otherwise (or spelled default) clause.
type OtherwiseArg struct {
	Directive *DirectiveIR
}

func (*ExprArg) Shape() PayloadShape           { return ShapeExpr }
func (*ExprList) Shape() PayloadShape          { return ShapeExprList }
func (*ItemList) Shape() PayloadShape          { return ShapeItems }
func (*IfArg) Shape() PayloadShape             { return ShapeIf }
func (*DefaultArg) Shape() PayloadShape        { return ShapeDefault }
func (*ReductionArg) Shape() PayloadShape      { return ShapeReduction }
func (*MapArg) Shape() PayloadShape            { return ShapeMap }
func (*ScheduleArg) Shape() PayloadShape       { return ShapeSchedule }
func (*DistScheduleArg) Shape() PayloadShape   { return ShapeDistSchedule }
func (*DependArg) Shape() PayloadShape         { return ShapeDepend }
func (*LinearArg) Shape() PayloadShape         { return ShapeLinear }
func (*AlignedArg) Shape() PayloadShape        { return ShapeAligned }
func (*LastprivateArg) Shape() PayloadShape    { return ShapeLastprivate }
func (*ProcBindArg) Shape() PayloadShape       { return ShapeProcBind }
func (*OrderArg) Shape() PayloadShape          { return ShapeOrder }
func (*MemOrderArg) Shape() PayloadShape       { return ShapeMemOrder }
func (*DeviceTypeArg) Shape() PayloadShape     { return ShapeDeviceType }
func (*BindArg) Shape() PayloadShape           { return ShapeBind }
func (*DefaultmapArg) Shape() PayloadShape     { return ShapeDefaultmap }
func (*AllocateArg) Shape() PayloadShape       { return ShapeAllocate }
func (*AccParallelismArg) Shape() PayloadShape { return ShapeAccParallelism }
func (*AccDataArg) Shape() PayloadShape        { return ShapeAccData }
func (*WhenArg) Shape() PayloadShape           { return ShapeWhen }
func (*OtherwiseArg) Shape() PayloadShape      { return ShapeOtherwise }

func (*ExprArg) clauseData()           {}
func (*ExprList) clauseData()          {}
func (*ItemList) clauseData()          {}
func (*IfArg) clauseData()             {}
func (*DefaultArg) clauseData()        {}
func (*ReductionArg) clauseData()      {}
func (*MapArg) clauseData()            {}
func (*ScheduleArg) clauseData()       {}
func (*DistScheduleArg) clauseData()   {}
func (*DependArg) clauseData()         {}
func (*LinearArg) clauseData()         {}
func (*AlignedArg) clauseData()        {}
func (*LastprivateArg) clauseData()    {}
func (*ProcBindArg) clauseData()       {}
func (*OrderArg) clauseData()          {}
func (*MemOrderArg) clauseData()       {}
func (*DeviceTypeArg) clauseData()     {}
func (*AllocateArg) clauseData()       {}
func (*DefaultmapArg) clauseData()     {}
func (*BindArg) clauseData()           {}
func (*AccParallelismArg) clauseData() {}
func (*AccDataArg) clauseData()        {}
func (*WhenArg) clauseData()           {}
func (*OtherwiseArg) clauseData()      {}
