package ir

import (
	"fmt"
	"strings"
)

// DirectiveKind tags one canonical directive spelling per dialect.
// OpenMP kinds occupy 0x0000-0x0FFF and OpenACC kinds 0x1000-0x1FFF; a tag
// is never reused across dialects. The zero value is not a directive.
//
// End markers ("end parallel", "end do", ...) carry the end bit on top of
// the kind they close, so BaseOf and EndOf are cheap bit operations backed
// by the name table.
type DirectiveKind uint16

const directiveEndBit DirectiveKind = 0x0800

// OpenMP directives.
const (
	OmpParallel                   DirectiveKind = 0x0001
	OmpParallelFor                DirectiveKind = 0x0002
	OmpParallelForSimd            DirectiveKind = 0x0003
	OmpParallelDo                 DirectiveKind = 0x0004
	OmpParallelDoSimd             DirectiveKind = 0x0005
	OmpParallelLoop               DirectiveKind = 0x0006
	OmpParallelSections           DirectiveKind = 0x0007
	OmpParallelWorkshare          DirectiveKind = 0x0008
	OmpParallelMasked             DirectiveKind = 0x0009
	OmpParallelMaster             DirectiveKind = 0x000A
	OmpParallelMaskedTaskloop     DirectiveKind = 0x000B
	OmpParallelMaskedTaskloopSimd DirectiveKind = 0x000C
	OmpParallelMasterTaskloop     DirectiveKind = 0x000D
	OmpParallelMasterTaskloopSimd DirectiveKind = 0x000E

	OmpFor       DirectiveKind = 0x0010
	OmpForSimd   DirectiveKind = 0x0011
	OmpDo        DirectiveKind = 0x0012
	OmpDoSimd    DirectiveKind = 0x0013
	OmpSections  DirectiveKind = 0x0014
	OmpSection   DirectiveKind = 0x0015
	OmpSingle    DirectiveKind = 0x0016
	OmpWorkshare DirectiveKind = 0x0017
	OmpLoop      DirectiveKind = 0x0018
	OmpScope     DirectiveKind = 0x0019

	OmpSimd DirectiveKind = 0x0020

	OmpTask               DirectiveKind = 0x0030
	OmpTaskloop           DirectiveKind = 0x0031
	OmpTaskloopSimd       DirectiveKind = 0x0032
	OmpTaskyield          DirectiveKind = 0x0033
	OmpTaskwait           DirectiveKind = 0x0034
	OmpTaskgroup          DirectiveKind = 0x0035
	OmpMaskedTaskloop     DirectiveKind = 0x0036
	OmpMaskedTaskloopSimd DirectiveKind = 0x0037
	OmpMasterTaskloop     DirectiveKind = 0x0038
	OmpMasterTaskloopSimd DirectiveKind = 0x0039

	OmpTarget                               DirectiveKind = 0x0040
	OmpTargetData                           DirectiveKind = 0x0041
	OmpTargetEnterData                      DirectiveKind = 0x0042
	OmpTargetExitData                       DirectiveKind = 0x0043
	OmpTargetUpdate                         DirectiveKind = 0x0044
	OmpTargetParallel                       DirectiveKind = 0x0045
	OmpTargetParallelFor                    DirectiveKind = 0x0046
	OmpTargetParallelForSimd                DirectiveKind = 0x0047
	OmpTargetParallelDo                     DirectiveKind = 0x0048
	OmpTargetParallelDoSimd                 DirectiveKind = 0x0049
	OmpTargetParallelLoop                   DirectiveKind = 0x004A
	OmpTargetSimd                           DirectiveKind = 0x004B
	OmpTargetTeams                          DirectiveKind = 0x004C
	OmpTargetTeamsDistribute                DirectiveKind = 0x004D
	OmpTargetTeamsDistributeSimd            DirectiveKind = 0x004E
	OmpTargetTeamsDistributeParallelFor     DirectiveKind = 0x004F
	OmpTargetTeamsDistributeParallelForSimd DirectiveKind = 0x0050
	OmpTargetTeamsDistributeParallelDo      DirectiveKind = 0x0051
	OmpTargetTeamsDistributeParallelDoSimd  DirectiveKind = 0x0052
	OmpTargetTeamsLoop                      DirectiveKind = 0x0053

	OmpTeams                          DirectiveKind = 0x0060
	OmpTeamsDistribute                DirectiveKind = 0x0061
	OmpTeamsDistributeSimd            DirectiveKind = 0x0062
	OmpTeamsDistributeParallelFor     DirectiveKind = 0x0063
	OmpTeamsDistributeParallelForSimd DirectiveKind = 0x0064
	OmpTeamsDistributeParallelDo      DirectiveKind = 0x0065
	OmpTeamsDistributeParallelDoSimd  DirectiveKind = 0x0066
	OmpTeamsLoop                      DirectiveKind = 0x0067

	OmpDistribute                DirectiveKind = 0x0070
	OmpDistributeSimd            DirectiveKind = 0x0071
	OmpDistributeParallelFor     DirectiveKind = 0x0072
	OmpDistributeParallelForSimd DirectiveKind = 0x0073
	OmpDistributeParallelDo      DirectiveKind = 0x0074
	OmpDistributeParallelDoSimd  DirectiveKind = 0x0075

	OmpBarrier       DirectiveKind = 0x0080
	OmpCritical      DirectiveKind = 0x0081
	OmpAtomic        DirectiveKind = 0x0082
	OmpAtomicRead    DirectiveKind = 0x0083
	OmpAtomicWrite   DirectiveKind = 0x0084
	OmpAtomicUpdate  DirectiveKind = 0x0085
	OmpAtomicCapture DirectiveKind = 0x0086
	OmpFlush         DirectiveKind = 0x0087
	OmpOrdered       DirectiveKind = 0x0088
	OmpMaster        DirectiveKind = 0x0089
	OmpMasked        DirectiveKind = 0x008A
	OmpDepobj        DirectiveKind = 0x008B
	OmpScan          DirectiveKind = 0x008C

	OmpCancel            DirectiveKind = 0x0090
	OmpCancellationPoint DirectiveKind = 0x0091

	OmpThreadprivate       DirectiveKind = 0x00A0
	OmpDeclareSimd         DirectiveKind = 0x00A1
	OmpDeclareTarget       DirectiveKind = 0x00A2
	OmpBeginDeclareTarget  DirectiveKind = 0x00A3
	OmpDeclareReduction    DirectiveKind = 0x00A4
	OmpDeclareMapper       DirectiveKind = 0x00A5
	OmpDeclareVariant      DirectiveKind = 0x00A6
	OmpBeginDeclareVariant DirectiveKind = 0x00A7
	OmpAllocate            DirectiveKind = 0x00A8
	OmpAllocators          DirectiveKind = 0x00A9
	OmpRequires            DirectiveKind = 0x00AA
	OmpAssumes             DirectiveKind = 0x00AB
	OmpBeginAssumes        DirectiveKind = 0x00AC
	OmpAssume              DirectiveKind = 0x00AD

	OmpMetadirective      DirectiveKind = 0x00B0
	OmpBeginMetadirective DirectiveKind = 0x00B1
	OmpNothing            DirectiveKind = 0x00B2
	OmpError              DirectiveKind = 0x00B3
	OmpDispatch           DirectiveKind = 0x00B4
	OmpInterop            DirectiveKind = 0x00B5
	OmpTile               DirectiveKind = 0x00B6
	OmpUnroll             DirectiveKind = 0x00B7
)

// OpenACC directives.
const (
	AccParallel     DirectiveKind = 0x1001
	AccParallelLoop DirectiveKind = 0x1002
	AccKernels      DirectiveKind = 0x1003
	AccKernelsLoop  DirectiveKind = 0x1004
	AccSerial       DirectiveKind = 0x1005
	AccSerialLoop   DirectiveKind = 0x1006
	AccLoop         DirectiveKind = 0x1007

	AccData      DirectiveKind = 0x1010
	AccEnterData DirectiveKind = 0x1011
	AccExitData  DirectiveKind = 0x1012
	AccHostData  DirectiveKind = 0x1013
	AccDeclare   DirectiveKind = 0x1014
	AccCache     DirectiveKind = 0x1015

	AccAtomic        DirectiveKind = 0x1020
	AccAtomicRead    DirectiveKind = 0x1021
	AccAtomicWrite   DirectiveKind = 0x1022
	AccAtomicUpdate  DirectiveKind = 0x1023
	AccAtomicCapture DirectiveKind = 0x1024

	AccRoutine  DirectiveKind = 0x1030
	AccWait     DirectiveKind = 0x1031
	AccInit     DirectiveKind = 0x1032
	AccShutdown DirectiveKind = 0x1033
	AccSet      DirectiveKind = 0x1034
	AccUpdate   DirectiveKind = 0x1035
)

// End markers. Each is its base kind with the end bit set, except the
// begin/end pairs whose base is the begin form.
const (
	OmpEndParallel                   = OmpParallel | directiveEndBit
	OmpEndParallelDo                 = OmpParallelDo | directiveEndBit
	OmpEndParallelDoSimd             = OmpParallelDoSimd | directiveEndBit
	OmpEndParallelLoop               = OmpParallelLoop | directiveEndBit
	OmpEndParallelSections           = OmpParallelSections | directiveEndBit
	OmpEndParallelWorkshare          = OmpParallelWorkshare | directiveEndBit
	OmpEndParallelMasked             = OmpParallelMasked | directiveEndBit
	OmpEndParallelMaster             = OmpParallelMaster | directiveEndBit
	OmpEndParallelMaskedTaskloop     = OmpParallelMaskedTaskloop | directiveEndBit
	OmpEndParallelMaskedTaskloopSimd = OmpParallelMaskedTaskloopSimd | directiveEndBit
	OmpEndParallelMasterTaskloop     = OmpParallelMasterTaskloop | directiveEndBit
	OmpEndParallelMasterTaskloopSimd = OmpParallelMasterTaskloopSimd | directiveEndBit

	OmpEndDo        = OmpDo | directiveEndBit
	OmpEndDoSimd    = OmpDoSimd | directiveEndBit
	OmpEndSections  = OmpSections | directiveEndBit
	OmpEndSingle    = OmpSingle | directiveEndBit
	OmpEndWorkshare = OmpWorkshare | directiveEndBit
	OmpEndLoop      = OmpLoop | directiveEndBit
	OmpEndScope     = OmpScope | directiveEndBit
	OmpEndSimd      = OmpSimd | directiveEndBit

	OmpEndTask               = OmpTask | directiveEndBit
	OmpEndTaskloop           = OmpTaskloop | directiveEndBit
	OmpEndTaskloopSimd       = OmpTaskloopSimd | directiveEndBit
	OmpEndTaskgroup          = OmpTaskgroup | directiveEndBit
	OmpEndMaskedTaskloop     = OmpMaskedTaskloop | directiveEndBit
	OmpEndMaskedTaskloopSimd = OmpMaskedTaskloopSimd | directiveEndBit
	OmpEndMasterTaskloop     = OmpMasterTaskloop | directiveEndBit
	OmpEndMasterTaskloopSimd = OmpMasterTaskloopSimd | directiveEndBit

	OmpEndTarget                              = OmpTarget | directiveEndBit
	OmpEndTargetData                          = OmpTargetData | directiveEndBit
	OmpEndTargetParallel                      = OmpTargetParallel | directiveEndBit
	OmpEndTargetParallelDo                    = OmpTargetParallelDo | directiveEndBit
	OmpEndTargetParallelDoSimd                = OmpTargetParallelDoSimd | directiveEndBit
	OmpEndTargetParallelLoop                  = OmpTargetParallelLoop | directiveEndBit
	OmpEndTargetSimd                          = OmpTargetSimd | directiveEndBit
	OmpEndTargetTeams                         = OmpTargetTeams | directiveEndBit
	OmpEndTargetTeamsDistribute               = OmpTargetTeamsDistribute | directiveEndBit
	OmpEndTargetTeamsDistributeSimd           = OmpTargetTeamsDistributeSimd | directiveEndBit
	OmpEndTargetTeamsDistributeParallelDo     = OmpTargetTeamsDistributeParallelDo | directiveEndBit
	OmpEndTargetTeamsDistributeParallelDoSimd = OmpTargetTeamsDistributeParallelDoSimd | directiveEndBit
	OmpEndTargetTeamsLoop                     = OmpTargetTeamsLoop | directiveEndBit

	OmpEndTeams                         = OmpTeams | directiveEndBit
	OmpEndTeamsDistribute               = OmpTeamsDistribute | directiveEndBit
	OmpEndTeamsDistributeSimd           = OmpTeamsDistributeSimd | directiveEndBit
	OmpEndTeamsDistributeParallelDo     = OmpTeamsDistributeParallelDo | directiveEndBit
	OmpEndTeamsDistributeParallelDoSimd = OmpTeamsDistributeParallelDoSimd | directiveEndBit
	OmpEndTeamsLoop                     = OmpTeamsLoop | directiveEndBit

	OmpEndDistribute               = OmpDistribute | directiveEndBit
	OmpEndDistributeSimd           = OmpDistributeSimd | directiveEndBit
	OmpEndDistributeParallelDo     = OmpDistributeParallelDo | directiveEndBit
	OmpEndDistributeParallelDoSimd = OmpDistributeParallelDoSimd | directiveEndBit

	OmpEndCritical = OmpCritical | directiveEndBit
	OmpEndOrdered  = OmpOrdered | directiveEndBit
	OmpEndMaster   = OmpMaster | directiveEndBit
	OmpEndMasked   = OmpMasked | directiveEndBit
	OmpEndAtomic   = OmpAtomic | directiveEndBit

	OmpEndDeclareTarget  = OmpDeclareTarget | directiveEndBit
	OmpEndDeclareVariant = OmpBeginDeclareVariant | directiveEndBit
	OmpEndAssumes        = OmpBeginAssumes | directiveEndBit
	OmpEndMetadirective  = OmpBeginMetadirective | directiveEndBit
	OmpEndAllocators     = OmpAllocators | directiveEndBit

	AccEndParallel     = AccParallel | directiveEndBit
	AccEndParallelLoop = AccParallelLoop | directiveEndBit
	AccEndKernels      = AccKernels | directiveEndBit
	AccEndKernelsLoop  = AccKernelsLoop | directiveEndBit
	AccEndSerial       = AccSerial | directiveEndBit
	AccEndSerialLoop   = AccSerialLoop | directiveEndBit
	AccEndData         = AccData | directiveEndBit
	AccEndHostData     = AccHostData | directiveEndBit
	AccEndAtomic       = AccAtomic | directiveEndBit
)

// directiveNames holds the canonical spelling of every kind: lowercase,
// space-separated, never underscored. The parser registry layers aliases
// (host_data, enter_data) on top of these.
var directiveNames = map[DirectiveKind]string{
	OmpParallel:                   "parallel",
	OmpParallelFor:                "parallel for",
	OmpParallelForSimd:            "parallel for simd",
	OmpParallelDo:                 "parallel do",
	OmpParallelDoSimd:             "parallel do simd",
	OmpParallelLoop:               "parallel loop",
	OmpParallelSections:           "parallel sections",
	OmpParallelWorkshare:          "parallel workshare",
	OmpParallelMasked:             "parallel masked",
	OmpParallelMaster:             "parallel master",
	OmpParallelMaskedTaskloop:     "parallel masked taskloop",
	OmpParallelMaskedTaskloopSimd: "parallel masked taskloop simd",
	OmpParallelMasterTaskloop:     "parallel master taskloop",
	OmpParallelMasterTaskloopSimd: "parallel master taskloop simd",

	OmpFor:       "for",
	OmpForSimd:   "for simd",
	OmpDo:        "do",
	OmpDoSimd:    "do simd",
	OmpSections:  "sections",
	OmpSection:   "section",
	OmpSingle:    "single",
	OmpWorkshare: "workshare",
	OmpLoop:      "loop",
	OmpScope:     "scope",

	OmpSimd: "simd",

	OmpTask:               "task",
	OmpTaskloop:           "taskloop",
	OmpTaskloopSimd:       "taskloop simd",
	OmpTaskyield:          "taskyield",
	OmpTaskwait:           "taskwait",
	OmpTaskgroup:          "taskgroup",
	OmpMaskedTaskloop:     "masked taskloop",
	OmpMaskedTaskloopSimd: "masked taskloop simd",
	OmpMasterTaskloop:     "master taskloop",
	OmpMasterTaskloopSimd: "master taskloop simd",

	OmpTarget:                               "target",
	OmpTargetData:                           "target data",
	OmpTargetEnterData:                      "target enter data",
	OmpTargetExitData:                       "target exit data",
	OmpTargetUpdate:                         "target update",
	OmpTargetParallel:                       "target parallel",
	OmpTargetParallelFor:                    "target parallel for",
	OmpTargetParallelForSimd:                "target parallel for simd",
	OmpTargetParallelDo:                     "target parallel do",
	OmpTargetParallelDoSimd:                 "target parallel do simd",
	OmpTargetParallelLoop:                   "target parallel loop",
	OmpTargetSimd:                           "target simd",
	OmpTargetTeams:                          "target teams",
	OmpTargetTeamsDistribute:                "target teams distribute",
	OmpTargetTeamsDistributeSimd:            "target teams distribute simd",
	OmpTargetTeamsDistributeParallelFor:     "target teams distribute parallel for",
	OmpTargetTeamsDistributeParallelForSimd: "target teams distribute parallel for simd",
	OmpTargetTeamsDistributeParallelDo:      "target teams distribute parallel do",
	OmpTargetTeamsDistributeParallelDoSimd:  "target teams distribute parallel do simd",
	OmpTargetTeamsLoop:                      "target teams loop",

	OmpTeams:                          "teams",
	OmpTeamsDistribute:                "teams distribute",
	OmpTeamsDistributeSimd:            "teams distribute simd",
	OmpTeamsDistributeParallelFor:     "teams distribute parallel for",
	OmpTeamsDistributeParallelForSimd: "teams distribute parallel for simd",
	OmpTeamsDistributeParallelDo:      "teams distribute parallel do",
	OmpTeamsDistributeParallelDoSimd:  "teams distribute parallel do simd",
	OmpTeamsLoop:                      "teams loop",

	OmpDistribute:                "distribute",
	OmpDistributeSimd:            "distribute simd",
	OmpDistributeParallelFor:     "distribute parallel for",
	OmpDistributeParallelForSimd: "distribute parallel for simd",
	OmpDistributeParallelDo:      "distribute parallel do",
	OmpDistributeParallelDoSimd:  "distribute parallel do simd",

	OmpBarrier:       "barrier",
	OmpCritical:      "critical",
	OmpAtomic:        "atomic",
	OmpAtomicRead:    "atomic read",
	OmpAtomicWrite:   "atomic write",
	OmpAtomicUpdate:  "atomic update",
	OmpAtomicCapture: "atomic capture",
	OmpFlush:         "flush",
	OmpOrdered:       "ordered",
	OmpMaster:        "master",
	OmpMasked:        "masked",
	OmpDepobj:        "depobj",
	OmpScan:          "scan",

	OmpCancel:            "cancel",
	OmpCancellationPoint: "cancellation point",

	OmpThreadprivate:       "threadprivate",
	OmpDeclareSimd:         "declare simd",
	OmpDeclareTarget:       "declare target",
	OmpBeginDeclareTarget:  "begin declare target",
	OmpDeclareReduction:    "declare reduction",
	OmpDeclareMapper:       "declare mapper",
	OmpDeclareVariant:      "declare variant",
	OmpBeginDeclareVariant: "begin declare variant",
	OmpAllocate:            "allocate",
	OmpAllocators:          "allocators",
	OmpRequires:            "requires",
	OmpAssumes:             "assumes",
	OmpBeginAssumes:        "begin assumes",
	OmpAssume:              "assume",

	OmpMetadirective:      "metadirective",
	OmpBeginMetadirective: "begin metadirective",
	OmpNothing:            "nothing",
	OmpError:              "error",
	OmpDispatch:           "dispatch",
	OmpInterop:            "interop",
	OmpTile:               "tile",
	OmpUnroll:             "unroll",

	OmpEndParallel:                   "end parallel",
	OmpEndParallelDo:                 "end parallel do",
	OmpEndParallelDoSimd:             "end parallel do simd",
	OmpEndParallelLoop:               "end parallel loop",
	OmpEndParallelSections:           "end parallel sections",
	OmpEndParallelWorkshare:          "end parallel workshare",
	OmpEndParallelMasked:             "end parallel masked",
	OmpEndParallelMaster:             "end parallel master",
	OmpEndParallelMaskedTaskloop:     "end parallel masked taskloop",
	OmpEndParallelMaskedTaskloopSimd: "end parallel masked taskloop simd",
	OmpEndParallelMasterTaskloop:     "end parallel master taskloop",
	OmpEndParallelMasterTaskloopSimd: "end parallel master taskloop simd",

	OmpEndDo:        "end do",
	OmpEndDoSimd:    "end do simd",
	OmpEndSections:  "end sections",
	OmpEndSingle:    "end single",
	OmpEndWorkshare: "end workshare",
	OmpEndLoop:      "end loop",
	OmpEndScope:     "end scope",
	OmpEndSimd:      "end simd",

	OmpEndTask:               "end task",
	OmpEndTaskloop:           "end taskloop",
	OmpEndTaskloopSimd:       "end taskloop simd",
	OmpEndTaskgroup:          "end taskgroup",
	OmpEndMaskedTaskloop:     "end masked taskloop",
	OmpEndMaskedTaskloopSimd: "end masked taskloop simd",
	OmpEndMasterTaskloop:     "end master taskloop",
	OmpEndMasterTaskloopSimd: "end master taskloop simd",

	OmpEndTarget:                              "end target",
	OmpEndTargetData:                          "end target data",
	OmpEndTargetParallel:                      "end target parallel",
	OmpEndTargetParallelDo:                    "end target parallel do",
	OmpEndTargetParallelDoSimd:                "end target parallel do simd",
	OmpEndTargetParallelLoop:                  "end target parallel loop",
	OmpEndTargetSimd:                          "end target simd",
	OmpEndTargetTeams:                         "end target teams",
	OmpEndTargetTeamsDistribute:               "end target teams distribute",
	OmpEndTargetTeamsDistributeSimd:           "end target teams distribute simd",
	OmpEndTargetTeamsDistributeParallelDo:     "end target teams distribute parallel do",
	OmpEndTargetTeamsDistributeParallelDoSimd: "end target teams distribute parallel do simd",
	OmpEndTargetTeamsLoop:                     "end target teams loop",

	OmpEndTeams:                         "end teams",
	OmpEndTeamsDistribute:               "end teams distribute",
	OmpEndTeamsDistributeSimd:           "end teams distribute simd",
	OmpEndTeamsDistributeParallelDo:     "end teams distribute parallel do",
	OmpEndTeamsDistributeParallelDoSimd: "end teams distribute parallel do simd",
	OmpEndTeamsLoop:                     "end teams loop",

	OmpEndDistribute:               "end distribute",
	OmpEndDistributeSimd:           "end distribute simd",
	OmpEndDistributeParallelDo:     "end distribute parallel do",
	OmpEndDistributeParallelDoSimd: "end distribute parallel do simd",

	OmpEndCritical: "end critical",
	OmpEndOrdered:  "end ordered",
	OmpEndMaster:   "end master",
	OmpEndMasked:   "end masked",
	OmpEndAtomic:   "end atomic",

	OmpEndDeclareTarget:  "end declare target",
	OmpEndDeclareVariant: "end declare variant",
	OmpEndAssumes:        "end assumes",
	OmpEndMetadirective:  "end metadirective",
	OmpEndAllocators:     "end allocators",

	AccParallel:     "parallel",
	AccParallelLoop: "parallel loop",
	AccKernels:      "kernels",
	AccKernelsLoop:  "kernels loop",
	AccSerial:       "serial",
	AccSerialLoop:   "serial loop",
	AccLoop:         "loop",

	AccData:      "data",
	AccEnterData: "enter data",
	AccExitData:  "exit data",
	AccHostData:  "host data",
	AccDeclare:   "declare",
	AccCache:     "cache",

	AccAtomic:        "atomic",
	AccAtomicRead:    "atomic read",
	AccAtomicWrite:   "atomic write",
	AccAtomicUpdate:  "atomic update",
	AccAtomicCapture: "atomic capture",

	AccRoutine:  "routine",
	AccWait:     "wait",
	AccInit:     "init",
	AccShutdown: "shutdown",
	AccSet:      "set",
	AccUpdate:   "update",

	AccEndParallel:     "end parallel",
	AccEndParallelLoop: "end parallel loop",
	AccEndKernels:      "end kernels",
	AccEndKernelsLoop:  "end kernels loop",
	AccEndSerial:       "end serial",
	AccEndSerialLoop:   "end serial loop",
	AccEndData:         "end data",
	AccEndHostData:     "end host data",
	AccEndAtomic:       "end atomic",
}

// String returns the canonical spelling, or a numeric form for values
// outside the registry.
func (k DirectiveKind) String() string {
	if name, ok := directiveNames[k]; ok {
		return name
	}
	return fmt.Sprintf("DirectiveKind(0x%04X)", uint16(k))
}

// Valid reports whether k is a registered directive of either dialect.
func (k DirectiveKind) Valid() bool {
	_, ok := directiveNames[k]
	return ok
}

// Dialect returns the namespace partition k belongs to.
func (k DirectiveKind) Dialect() Dialect {
	if k&0x1000 != 0 {
		return DialectOpenACC
	}
	return DialectOpenMP
}

// IsEnd reports whether k is an end marker.
func (k DirectiveKind) IsEnd() bool {
	return k&directiveEndBit != 0 && k.Valid()
}

// endOverrides maps block openers whose end marker is not the opener with
// the end bit set. "declare target" and "begin declare target" share
// "end declare target".
var endOverrides = map[DirectiveKind]DirectiveKind{
	OmpBeginDeclareTarget: OmpEndDeclareTarget,
}

// EndOf returns the end marker paired with a directive, if the governing
// grammar defines one.
func EndOf(k DirectiveKind) (DirectiveKind, bool) {
	if e, ok := endOverrides[k]; ok {
		return e, true
	}
	if !k.Valid() || k.IsEnd() {
		return 0, false
	}
	e := k | directiveEndBit
	if !e.Valid() {
		return 0, false
	}
	return e, true
}

// BaseOf returns the directive an end marker closes.
func BaseOf(k DirectiveKind) (DirectiveKind, bool) {
	if !k.IsEnd() {
		return 0, false
	}
	b := k &^ directiveEndBit
	if !b.Valid() {
		return 0, false
	}
	return b, true
}

type directiveFlag uint16

const (
	flagParallel directiveFlag = 1 << iota
	flagWorksharing
	flagSimd
	flagTask
	flagTarget
	flagTeams
	flagLoop
	flagSync
	flagDeclarative
	flagNoBlock
)

var worksharingKinds = map[DirectiveKind]bool{
	OmpFor: true, OmpForSimd: true, OmpDo: true, OmpDoSimd: true,
	OmpSections: true, OmpSection: true, OmpSingle: true, OmpWorkshare: true,
}

var syncKinds = map[DirectiveKind]bool{
	OmpBarrier: true, OmpCritical: true, OmpFlush: true, OmpOrdered: true,
	OmpMaster: true, OmpMasked: true,
	OmpAtomic: true, OmpAtomicRead: true, OmpAtomicWrite: true,
	OmpAtomicUpdate: true, OmpAtomicCapture: true,
	AccAtomic: true, AccAtomicRead: true, AccAtomicWrite: true,
	AccAtomicUpdate: true, AccAtomicCapture: true, AccWait: true,
}

var declarativeKinds = map[DirectiveKind]bool{
	OmpThreadprivate: true, OmpDeclareSimd: true, OmpDeclareTarget: true,
	OmpBeginDeclareTarget: true, OmpDeclareReduction: true,
	OmpDeclareMapper: true, OmpDeclareVariant: true,
	OmpBeginDeclareVariant: true, OmpRequires: true, OmpAssumes: true,
	OmpBeginAssumes: true, OmpAllocate: true,
	AccDeclare: true, AccRoutine: true,
}

// noBlockKinds lists directives that stand alone: nothing after them is
// owned by the directive.
var noBlockKinds = map[DirectiveKind]bool{
	OmpBarrier: true, OmpTaskyield: true, OmpTaskwait: true, OmpFlush: true,
	OmpTargetEnterData: true, OmpTargetExitData: true, OmpTargetUpdate: true,
	OmpThreadprivate: true, OmpDeclareSimd: true, OmpDeclareReduction: true,
	OmpDeclareMapper: true, OmpDeclareTarget: true, OmpBeginDeclareTarget: true,
	OmpDeclareVariant: true, OmpBeginDeclareVariant: true,
	OmpScan: true, OmpDepobj: true, OmpNothing: true, OmpError: true,
	OmpSection: true, OmpCancel: true, OmpCancellationPoint: true,
	OmpRequires: true, OmpAssumes: true, OmpBeginAssumes: true,
	OmpAllocate: true, OmpInterop: true, OmpBeginMetadirective: true,
	AccEnterData: true, AccExitData: true, AccUpdate: true, AccWait: true,
	AccInit: true, AccShutdown: true, AccSet: true, AccCache: true,
	AccRoutine: true, AccDeclare: true,
}

var directiveFlags map[DirectiveKind]directiveFlag

func init() {
	directiveFlags = make(map[DirectiveKind]directiveFlag, len(directiveNames))
	for k, name := range directiveNames {
		var f directiveFlag
		words := strings.Fields(name)
		if words[0] == "end" {
			directiveFlags[k] = 0
			continue
		}
		if words[0] == "parallel" {
			f |= flagParallel
		}
		if words[0] == "target" {
			f |= flagTarget
		}
		for _, w := range words {
			switch {
			case w == "simd":
				f |= flagSimd
			case w == "teams":
				f |= flagTeams
			case w == "loop":
				f |= flagLoop
			case strings.HasPrefix(w, "task"):
				f |= flagTask
			}
		}
		if worksharingKinds[k] {
			f |= flagWorksharing
		}
		if syncKinds[k] {
			f |= flagSync
		}
		if declarativeKinds[k] {
			f |= flagDeclarative
		}
		if noBlockKinds[k] {
			f |= flagNoBlock
		}
		directiveFlags[k] = f
	}
}

// IsParallel reports whether k opens a parallel region (parallel and its
// combined forms; target parallel forms answer false).
func (k DirectiveKind) IsParallel() bool { return directiveFlags[k]&flagParallel != 0 }

// IsWorksharing reports whether k is a worksharing construct.
func (k DirectiveKind) IsWorksharing() bool { return directiveFlags[k]&flagWorksharing != 0 }

// IsSimd reports whether k involves SIMD vectorization.
func (k DirectiveKind) IsSimd() bool { return directiveFlags[k]&flagSimd != 0 }

// IsTask reports whether k belongs to the tasking family.
func (k DirectiveKind) IsTask() bool { return directiveFlags[k]&flagTask != 0 }

// IsTarget reports whether k offloads to a device.
func (k DirectiveKind) IsTarget() bool { return directiveFlags[k]&flagTarget != 0 }

// IsTeams reports whether k creates a teams region, including the
// target teams combined forms.
func (k DirectiveKind) IsTeams() bool { return directiveFlags[k]&flagTeams != 0 }

// IsLoop reports whether k is a loop construct (loop and its combined
// forms; taskloop answers false).
func (k DirectiveKind) IsLoop() bool { return directiveFlags[k]&flagLoop != 0 }

// IsSynchronization reports whether k synchronizes execution.
func (k DirectiveKind) IsSynchronization() bool { return directiveFlags[k]&flagSync != 0 }

// IsDeclarative reports whether k declares properties instead of
// governing execution.
func (k DirectiveKind) IsDeclarative() bool { return directiveFlags[k]&flagDeclarative != 0 }

// HasStructuredBlock reports whether k owns the statement or block that
// follows it.
func (k DirectiveKind) HasStructuredBlock() bool {
	if !k.Valid() || k.IsEnd() {
		return false
	}
	return directiveFlags[k]&flagNoBlock == 0
}

// loopTwinPairs lists the C loop spellings and their Fortran twins.
var loopTwinPairs = [...][2]DirectiveKind{
	{OmpFor, OmpDo},
	{OmpForSimd, OmpDoSimd},
	{OmpParallelFor, OmpParallelDo},
	{OmpParallelForSimd, OmpParallelDoSimd},
	{OmpDistributeParallelFor, OmpDistributeParallelDo},
	{OmpDistributeParallelForSimd, OmpDistributeParallelDoSimd},
	{OmpTargetParallelFor, OmpTargetParallelDo},
	{OmpTargetParallelForSimd, OmpTargetParallelDoSimd},
	{OmpTeamsDistributeParallelFor, OmpTeamsDistributeParallelDo},
	{OmpTeamsDistributeParallelForSimd, OmpTeamsDistributeParallelDoSimd},
	{OmpTargetTeamsDistributeParallelFor, OmpTargetTeamsDistributeParallelDo},
	{OmpTargetTeamsDistributeParallelForSimd, OmpTargetTeamsDistributeParallelDoSimd},
}

var (
	loopTwins    = make(map[DirectiveKind]DirectiveKind, 2*len(loopTwinPairs))
	forSpellings = make(map[DirectiveKind]bool, len(loopTwinPairs))
)

func init() {
	for _, p := range loopTwinPairs {
		loopTwins[p[0]] = p[1]
		loopTwins[p[1]] = p[0]
		forSpellings[p[0]] = true
	}
}

// LoopTwin maps between the for spelling of a loop directive and its
// Fortran do spelling. Kinds without a twin map to themselves.
func LoopTwin(k DirectiveKind) DirectiveKind {
	if t, ok := loopTwins[k]; ok {
		return t
	}
	return k
}

// LoopForLanguage returns the spelling of k that lang expects: the do
// twin for Fortran, the for twin for C. Kinds without a twin, end
// markers included, come back unchanged.
func LoopForLanguage(k DirectiveKind, lang Language) DirectiveKind {
	t, ok := loopTwins[k]
	if !ok {
		return k
	}
	if lang.IsFortran() == forSpellings[k] {
		return t
	}
	return k
}
