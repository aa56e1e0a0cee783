package ir

// Closed keyword enums used inside clause payloads. Tag values are part of
// the output contract and never change; gaps leave room for future
// spellings without renumbering.

// ReductionOperator identifies the combiner of a reduction family clause.
type ReductionOperator uint8

const (
	ReduceAdd        ReductionOperator = 0
	ReduceMul        ReductionOperator = 1
	ReduceSub        ReductionOperator = 2
	ReduceBitAnd     ReductionOperator = 10
	ReduceBitOr      ReductionOperator = 11
	ReduceBitXor     ReductionOperator = 12
	ReduceLogicalAnd ReductionOperator = 20
	ReduceLogicalOr  ReductionOperator = 21
	ReduceMin        ReductionOperator = 30
	ReduceMax        ReductionOperator = 31
	// ReduceCustom marks a user-declared reduction identifier; the
	// spelling lives in ReductionArg.Custom.
	ReduceCustom ReductionOperator = 100
)

var reductionOperatorNames = map[ReductionOperator]string{
	ReduceAdd:        "+",
	ReduceMul:        "*",
	ReduceSub:        "-",
	ReduceBitAnd:     "&",
	ReduceBitOr:      "|",
	ReduceBitXor:     "^",
	ReduceLogicalAnd: "&&",
	ReduceLogicalOr:  "||",
	ReduceMin:        "min",
	ReduceMax:        "max",
	ReduceCustom:     "custom",
}

var reductionOperators = map[string]ReductionOperator{
	"+":   ReduceAdd,
	"*":   ReduceMul,
	"-":   ReduceSub,
	"&":   ReduceBitAnd,
	"|":   ReduceBitOr,
	"^":   ReduceBitXor,
	"&&":  ReduceLogicalAnd,
	"||":  ReduceLogicalOr,
	"min": ReduceMin,
	"max": ReduceMax,
}

func (op ReductionOperator) String() string { return reductionOperatorNames[op] }

// ParseReductionOperator matches s against the closed operator set.
// Anything else is a custom reduction identifier.
func ParseReductionOperator(s string) (ReductionOperator, bool) {
	op, ok := reductionOperators[s]
	return op, ok
}

// MapType is the transfer direction of a map clause.
type MapType uint8

const (
	MapTo      MapType = 0
	MapFrom    MapType = 1
	MapToFrom  MapType = 2
	MapAlloc   MapType = 3
	MapRelease MapType = 4
	MapDelete  MapType = 5
)

var mapTypeNames = map[MapType]string{
	MapTo:      "to",
	MapFrom:    "from",
	MapToFrom:  "tofrom",
	MapAlloc:   "alloc",
	MapRelease: "release",
	MapDelete:  "delete",
}

var mapTypes = map[string]MapType{
	"to":      MapTo,
	"from":    MapFrom,
	"tofrom":  MapToFrom,
	"alloc":   MapAlloc,
	"release": MapRelease,
	"delete":  MapDelete,
}

func (t MapType) String() string { return mapTypeNames[t] }

func ParseMapType(s string) (MapType, bool) {
	t, ok := mapTypes[s]
	return t, ok
}

// MapModifierKind tags the modifiers that may precede a map type.
type MapModifierKind uint8

const (
	MapModAlways MapModifierKind = iota
	MapModClose
	MapModPresent
	MapModMapper
)

var mapModifierNames = map[MapModifierKind]string{
	MapModAlways:  "always",
	MapModClose:   "close",
	MapModPresent: "present",
	MapModMapper:  "mapper",
}

var mapModifiers = map[string]MapModifierKind{
	"always":  MapModAlways,
	"close":   MapModClose,
	"present": MapModPresent,
	"mapper":  MapModMapper,
}

func (m MapModifierKind) String() string { return mapModifierNames[m] }

func ParseMapModifier(s string) (MapModifierKind, bool) {
	m, ok := mapModifiers[s]
	return m, ok
}

// MapModifier is one modifier occurrence; Mapper holds the identifier of
// a mapper(id) modifier and is empty otherwise.
type MapModifier struct {
	Kind   MapModifierKind
	Mapper string
}

// ScheduleKind is the loop scheduling policy of schedule and
// dist_schedule clauses.
type ScheduleKind uint8

const (
	ScheduleStatic  ScheduleKind = 0
	ScheduleDynamic ScheduleKind = 1
	ScheduleGuided  ScheduleKind = 2
	ScheduleAuto    ScheduleKind = 3
	ScheduleRuntime ScheduleKind = 4
)

var scheduleKindNames = map[ScheduleKind]string{
	ScheduleStatic:  "static",
	ScheduleDynamic: "dynamic",
	ScheduleGuided:  "guided",
	ScheduleAuto:    "auto",
	ScheduleRuntime: "runtime",
}

var scheduleKinds = map[string]ScheduleKind{
	"static":  ScheduleStatic,
	"dynamic": ScheduleDynamic,
	"guided":  ScheduleGuided,
	"auto":    ScheduleAuto,
	"runtime": ScheduleRuntime,
}

func (k ScheduleKind) String() string { return scheduleKindNames[k] }

func ParseScheduleKind(s string) (ScheduleKind, bool) {
	k, ok := scheduleKinds[s]
	return k, ok
}

// ScheduleModifier is an ordering modifier preceding the schedule kind.
type ScheduleModifier uint8

const (
	ScheduleMonotonic    ScheduleModifier = 0
	ScheduleNonmonotonic ScheduleModifier = 1
	ScheduleSimd         ScheduleModifier = 2
)

var scheduleModifierNames = map[ScheduleModifier]string{
	ScheduleMonotonic:    "monotonic",
	ScheduleNonmonotonic: "nonmonotonic",
	ScheduleSimd:         "simd",
}

var scheduleModifiers = map[string]ScheduleModifier{
	"monotonic":    ScheduleMonotonic,
	"nonmonotonic": ScheduleNonmonotonic,
	"simd":         ScheduleSimd,
}

func (m ScheduleModifier) String() string { return scheduleModifierNames[m] }

func ParseScheduleModifier(s string) (ScheduleModifier, bool) {
	m, ok := scheduleModifiers[s]
	return m, ok
}

// DependType is the dependence kind of a depend clause.
type DependType uint8

const (
	DependIn            DependType = 0
	DependOut           DependType = 1
	DependInout         DependType = 2
	DependMutexinoutset DependType = 3
	DependDepobj        DependType = 4
	DependSource        DependType = 5
	DependSink          DependType = 6
)

var dependTypeNames = map[DependType]string{
	DependIn:            "in",
	DependOut:           "out",
	DependInout:         "inout",
	DependMutexinoutset: "mutexinoutset",
	DependDepobj:        "depobj",
	DependSource:        "source",
	DependSink:          "sink",
}

var dependTypes = map[string]DependType{
	"in":            DependIn,
	"out":           DependOut,
	"inout":         DependInout,
	"mutexinoutset": DependMutexinoutset,
	"depobj":        DependDepobj,
	"source":        DependSource,
	"sink":          DependSink,
}

func (t DependType) String() string { return dependTypeNames[t] }

func ParseDependType(s string) (DependType, bool) {
	t, ok := dependTypes[s]
	return t, ok
}

// DefaultKind is the data-sharing default of a default clause.
// DefaultPresent is OpenACC-only.
type DefaultKind uint8

const (
	DefaultShared       DefaultKind = 0
	DefaultNone         DefaultKind = 1
	DefaultPrivate      DefaultKind = 2
	DefaultFirstprivate DefaultKind = 3
	DefaultPresent      DefaultKind = 4
)

var defaultKindNames = map[DefaultKind]string{
	DefaultShared:       "shared",
	DefaultNone:         "none",
	DefaultPrivate:      "private",
	DefaultFirstprivate: "firstprivate",
	DefaultPresent:      "present",
}

var defaultKinds = map[string]DefaultKind{
	"shared":       DefaultShared,
	"none":         DefaultNone,
	"private":      DefaultPrivate,
	"firstprivate": DefaultFirstprivate,
	"present":      DefaultPresent,
}

func (k DefaultKind) String() string { return defaultKindNames[k] }

func ParseDefaultKind(s string) (DefaultKind, bool) {
	k, ok := defaultKinds[s]
	return k, ok
}

// ProcBindKind is the thread affinity policy of a proc_bind clause.
type ProcBindKind uint8

const (
	ProcBindMaster  ProcBindKind = 0
	ProcBindClose   ProcBindKind = 1
	ProcBindSpread  ProcBindKind = 2
	ProcBindPrimary ProcBindKind = 3
)

var procBindNames = map[ProcBindKind]string{
	ProcBindMaster:  "master",
	ProcBindClose:   "close",
	ProcBindSpread:  "spread",
	ProcBindPrimary: "primary",
}

var procBindKinds = map[string]ProcBindKind{
	"master":  ProcBindMaster,
	"close":   ProcBindClose,
	"spread":  ProcBindSpread,
	"primary": ProcBindPrimary,
}

func (k ProcBindKind) String() string { return procBindNames[k] }

func ParseProcBindKind(s string) (ProcBindKind, bool) {
	k, ok := procBindKinds[s]
	return k, ok
}

// MemoryOrder is the ordering of atomic and flush constructs.
type MemoryOrder uint8

const (
	MemOrderSeqCst  MemoryOrder = 0
	MemOrderAcqRel  MemoryOrder = 1
	MemOrderRelease MemoryOrder = 2
	MemOrderAcquire MemoryOrder = 3
	MemOrderRelaxed MemoryOrder = 4
)

var memoryOrderNames = map[MemoryOrder]string{
	MemOrderSeqCst:  "seq_cst",
	MemOrderAcqRel:  "acq_rel",
	MemOrderRelease: "release",
	MemOrderAcquire: "acquire",
	MemOrderRelaxed: "relaxed",
}

var memoryOrders = map[string]MemoryOrder{
	"seq_cst": MemOrderSeqCst,
	"acq_rel": MemOrderAcqRel,
	"release": MemOrderRelease,
	"acquire": MemOrderAcquire,
	"relaxed": MemOrderRelaxed,
}

func (o MemoryOrder) String() string { return memoryOrderNames[o] }

func ParseMemoryOrder(s string) (MemoryOrder, bool) {
	o, ok := memoryOrders[s]
	return o, ok
}

// DeviceTypeKind is the target audience of a device_type clause.
type DeviceTypeKind uint8

const (
	DeviceTypeHost   DeviceTypeKind = 0
	DeviceTypeNohost DeviceTypeKind = 1
	DeviceTypeAny    DeviceTypeKind = 2
)

var deviceTypeNames = map[DeviceTypeKind]string{
	DeviceTypeHost:   "host",
	DeviceTypeNohost: "nohost",
	DeviceTypeAny:    "any",
}

var deviceTypeKinds = map[string]DeviceTypeKind{
	"host":   DeviceTypeHost,
	"nohost": DeviceTypeNohost,
	"any":    DeviceTypeAny,
}

func (k DeviceTypeKind) String() string { return deviceTypeNames[k] }

func ParseDeviceTypeKind(s string) (DeviceTypeKind, bool) {
	k, ok := deviceTypeKinds[s]
	return k, ok
}

// LinearModifier refines how a linear clause treats its list items.
type LinearModifier uint8

const (
	LinearVal  LinearModifier = 0
	LinearRef  LinearModifier = 1
	LinearUval LinearModifier = 2
)

var linearModifierNames = map[LinearModifier]string{
	LinearVal:  "val",
	LinearRef:  "ref",
	LinearUval: "uval",
}

var linearModifiers = map[string]LinearModifier{
	"val":  LinearVal,
	"ref":  LinearRef,
	"uval": LinearUval,
}

func (m LinearModifier) String() string { return linearModifierNames[m] }

func ParseLinearModifier(s string) (LinearModifier, bool) {
	m, ok := linearModifiers[s]
	return m, ok
}

// OrderKind is the argument of an order clause.
type OrderKind uint8

const OrderConcurrent OrderKind = 0

func (k OrderKind) String() string {
	if k == OrderConcurrent {
		return "concurrent"
	}
	return ""
}

// OrderModifier is the optional prefix of an order clause argument.
type OrderModifier uint8

const (
	OrderReproducible  OrderModifier = 0
	OrderUnconstrained OrderModifier = 1
)

var orderModifierNames = map[OrderModifier]string{
	OrderReproducible:  "reproducible",
	OrderUnconstrained: "unconstrained",
}

var orderModifiers = map[string]OrderModifier{
	"reproducible":  OrderReproducible,
	"unconstrained": OrderUnconstrained,
}

func (m OrderModifier) String() string { return orderModifierNames[m] }

func ParseOrderModifier(s string) (OrderModifier, bool) {
	m, ok := orderModifiers[s]
	return m, ok
}

// BindKind is the binding region of a loop construct's bind clause.
type BindKind uint8

const (
	BindTeams    BindKind = 0
	BindParallel BindKind = 1
	BindThread   BindKind = 2
)

var bindKindNames = map[BindKind]string{
	BindTeams:    "teams",
	BindParallel: "parallel",
	BindThread:   "thread",
}

var bindKinds = map[string]BindKind{
	"teams":    BindTeams,
	"parallel": BindParallel,
	"thread":   BindThread,
}

func (k BindKind) String() string { return bindKindNames[k] }

func ParseBindKind(s string) (BindKind, bool) {
	k, ok := bindKinds[s]
	return k, ok
}

// DefaultmapBehavior is the implicit mapping rule of a defaultmap clause.
type DefaultmapBehavior uint8

const (
	DefaultmapAlloc        DefaultmapBehavior = 0
	DefaultmapTo           DefaultmapBehavior = 1
	DefaultmapFrom         DefaultmapBehavior = 2
	DefaultmapTofrom       DefaultmapBehavior = 3
	DefaultmapFirstprivate DefaultmapBehavior = 4
	DefaultmapNone         DefaultmapBehavior = 5
	DefaultmapDefault      DefaultmapBehavior = 6
	DefaultmapPresent      DefaultmapBehavior = 7
)

var defaultmapBehaviorNames = map[DefaultmapBehavior]string{
	DefaultmapAlloc:        "alloc",
	DefaultmapTo:           "to",
	DefaultmapFrom:         "from",
	DefaultmapTofrom:       "tofrom",
	DefaultmapFirstprivate: "firstprivate",
	DefaultmapNone:         "none",
	DefaultmapDefault:      "default",
	DefaultmapPresent:      "present",
}

var defaultmapBehaviors = map[string]DefaultmapBehavior{
	"alloc":        DefaultmapAlloc,
	"to":           DefaultmapTo,
	"from":         DefaultmapFrom,
	"tofrom":       DefaultmapTofrom,
	"firstprivate": DefaultmapFirstprivate,
	"none":         DefaultmapNone,
	"default":      DefaultmapDefault,
	"present":      DefaultmapPresent,
}

func (b DefaultmapBehavior) String() string { return defaultmapBehaviorNames[b] }

func ParseDefaultmapBehavior(s string) (DefaultmapBehavior, bool) {
	b, ok := defaultmapBehaviors[s]
	return b, ok
}

// DefaultmapCategory is the variable category a defaultmap rule applies to.
type DefaultmapCategory uint8

const (
	CategoryScalar      DefaultmapCategory = 0
	CategoryAggregate   DefaultmapCategory = 1
	CategoryPointer     DefaultmapCategory = 2
	CategoryAllocatable DefaultmapCategory = 3
	CategoryAll         DefaultmapCategory = 4
)

var defaultmapCategoryNames = map[DefaultmapCategory]string{
	CategoryScalar:      "scalar",
	CategoryAggregate:   "aggregate",
	CategoryPointer:     "pointer",
	CategoryAllocatable: "allocatable",
	CategoryAll:         "all",
}

var defaultmapCategories = map[string]DefaultmapCategory{
	"scalar":      CategoryScalar,
	"aggregate":   CategoryAggregate,
	"pointer":     CategoryPointer,
	"allocatable": CategoryAllocatable,
	"all":         CategoryAll,
}

func (c DefaultmapCategory) String() string { return defaultmapCategoryNames[c] }

func ParseDefaultmapCategory(s string) (DefaultmapCategory, bool) {
	c, ok := defaultmapCategories[s]
	return c, ok
}

// ReductionModifier is the optional first modifier of an OpenMP
// reduction clause.
type ReductionModifier uint8

const (
	ReductionModDefault ReductionModifier = 0
	ReductionModTask    ReductionModifier = 1
	ReductionModInscan  ReductionModifier = 2
)

var reductionModifierNames = map[ReductionModifier]string{
	ReductionModDefault: "default",
	ReductionModTask:    "task",
	ReductionModInscan:  "inscan",
}

var reductionModifiers = map[string]ReductionModifier{
	"default": ReductionModDefault,
	"task":    ReductionModTask,
	"inscan":  ReductionModInscan,
}

func (m ReductionModifier) String() string { return reductionModifierNames[m] }

func ParseReductionModifier(s string) (ReductionModifier, bool) {
	m, ok := reductionModifiers[s]
	return m, ok
}

// AccDataModifier is the tagged prefix of OpenACC data clauses
// (copyin(readonly: list), copyout(zero: list)).
type AccDataModifier uint8

const (
	AccDataReadonly AccDataModifier = 0
	AccDataZero     AccDataModifier = 1
)

var accDataModifierNames = map[AccDataModifier]string{
	AccDataReadonly: "readonly",
	AccDataZero:     "zero",
}

var accDataModifiers = map[string]AccDataModifier{
	"readonly": AccDataReadonly,
	"zero":     AccDataZero,
}

func (m AccDataModifier) String() string { return accDataModifierNames[m] }

func ParseAccDataModifier(s string) (AccDataModifier, bool) {
	m, ok := accDataModifiers[s]
	return m, ok
}

// TraitSetName is the selector-set namespace inside a metadirective
// context selector.
type TraitSetName uint8

const (
	TraitDevice         TraitSetName = 0
	TraitImplementation TraitSetName = 1
	TraitUser           TraitSetName = 2
	TraitConstruct      TraitSetName = 3
)

var traitSetNames = map[TraitSetName]string{
	TraitDevice:         "device",
	TraitImplementation: "implementation",
	TraitUser:           "user",
	TraitConstruct:      "construct",
}

var traitSets = map[string]TraitSetName{
	"device":         TraitDevice,
	"implementation": TraitImplementation,
	"user":           TraitUser,
	"construct":      TraitConstruct,
}

func (n TraitSetName) String() string { return traitSetNames[n] }

func ParseTraitSetName(s string) (TraitSetName, bool) {
	n, ok := traitSets[s]
	return n, ok
}
