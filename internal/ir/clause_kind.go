package ir

import "fmt"

// ClauseKind tags one clause spelling per dialect, partitioned exactly
// like DirectiveKind: OpenMP in 0x0000-0x0FFF, OpenACC in 0x1000-0x1FFF.
// Shorthand spellings (pcopy, present_or_copy) keep distinct tags so
// reconstruction reproduces what was written.
type ClauseKind uint16

// OpenMP clauses.
const (
	OmpClauseNowait            ClauseKind = 0x0001
	OmpClauseUntied            ClauseKind = 0x0002
	OmpClauseMergeable         ClauseKind = 0x0003
	OmpClauseInbranch          ClauseKind = 0x0004
	OmpClauseNotinbranch       ClauseKind = 0x0005
	OmpClauseNogroup           ClauseKind = 0x0006
	OmpClauseInclusive         ClauseKind = 0x0007
	OmpClauseExclusive         ClauseKind = 0x0008
	OmpClauseReproducible      ClauseKind = 0x0009
	OmpClauseDynamicAllocators ClauseKind = 0x000A
	OmpClauseSeqCst            ClauseKind = 0x000B
	OmpClauseAcqRel            ClauseKind = 0x000C
	OmpClauseRelease           ClauseKind = 0x000D
	OmpClauseAcquire           ClauseKind = 0x000E
	OmpClauseRelaxed           ClauseKind = 0x000F
	OmpClauseWeak              ClauseKind = 0x0010
	OmpClauseCompare           ClauseKind = 0x0011
	OmpClauseCapture           ClauseKind = 0x0012
	OmpClauseRead              ClauseKind = 0x0013
	OmpClauseWrite             ClauseKind = 0x0014
	OmpClauseUpdate            ClauseKind = 0x0015
	OmpClauseFull              ClauseKind = 0x0016
	OmpClauseIndirect          ClauseKind = 0x0017

	OmpClauseReverseOffload      ClauseKind = 0x0018
	OmpClauseUnifiedAddress      ClauseKind = 0x0019
	OmpClauseUnifiedSharedMemory ClauseKind = 0x001A
	OmpClauseSelfMaps            ClauseKind = 0x001B

	OmpClauseOrdered ClauseKind = 0x0020
	OmpClauseUnroll  ClauseKind = 0x0021
	OmpClausePartial ClauseKind = 0x0022

	OmpClausePrivate               ClauseKind = 0x0030
	OmpClauseFirstprivate          ClauseKind = 0x0031
	OmpClauseLastprivate           ClauseKind = 0x0032
	OmpClauseShared                ClauseKind = 0x0033
	OmpClauseCopyin                ClauseKind = 0x0034
	OmpClauseCopyprivate           ClauseKind = 0x0035
	OmpClauseReduction             ClauseKind = 0x0036
	OmpClauseInReduction           ClauseKind = 0x0037
	OmpClauseTaskReduction         ClauseKind = 0x0038
	OmpClauseMap                   ClauseKind = 0x0039
	OmpClauseDepend                ClauseKind = 0x003A
	OmpClauseSchedule              ClauseKind = 0x003B
	OmpClauseDistSchedule          ClauseKind = 0x003C
	OmpClauseCollapse              ClauseKind = 0x003D
	OmpClauseNumThreads            ClauseKind = 0x003E
	OmpClauseNumTeams              ClauseKind = 0x003F
	OmpClauseNumTasks              ClauseKind = 0x0040
	OmpClauseThreadLimit           ClauseKind = 0x0041
	OmpClauseGrainsize             ClauseKind = 0x0042
	OmpClausePriority              ClauseKind = 0x0043
	OmpClauseFinal                 ClauseKind = 0x0044
	OmpClauseIf                    ClauseKind = 0x0045
	OmpClauseDefault               ClauseKind = 0x0046
	OmpClauseDefaultmap            ClauseKind = 0x0047
	OmpClauseProcBind              ClauseKind = 0x0048
	OmpClauseBind                  ClauseKind = 0x0049
	OmpClauseDevice                ClauseKind = 0x004A
	OmpClauseDeviceType            ClauseKind = 0x004B
	OmpClauseIsDevicePtr           ClauseKind = 0x004C
	OmpClauseHasDeviceAddr         ClauseKind = 0x004D
	OmpClauseUseDevicePtr          ClauseKind = 0x004E
	OmpClauseUseDeviceAddr         ClauseKind = 0x004F
	OmpClauseUsesAllocators        ClauseKind = 0x0050
	OmpClauseAllocate              ClauseKind = 0x0051
	OmpClauseAllocator             ClauseKind = 0x0052
	OmpClauseAlign                 ClauseKind = 0x0053
	OmpClauseAligned               ClauseKind = 0x0054
	OmpClauseLinear                ClauseKind = 0x0055
	OmpClauseSafelen               ClauseKind = 0x0056
	OmpClauseSimdlen               ClauseKind = 0x0057
	OmpClauseNontemporal           ClauseKind = 0x0058
	OmpClauseOrder                 ClauseKind = 0x0059
	OmpClauseAtomicDefaultMemOrder ClauseKind = 0x005A
	OmpClauseHint                  ClauseKind = 0x005B
	OmpClauseDetach                ClauseKind = 0x005C
	OmpClauseAffinity              ClauseKind = 0x005D
	OmpClauseFilter                ClauseKind = 0x005E
	OmpClauseSizes                 ClauseKind = 0x005F
	OmpClauseWhen                  ClauseKind = 0x0060
	OmpClauseOtherwise             ClauseKind = 0x0061
	OmpClauseMatch                 ClauseKind = 0x0062
	OmpClauseLabel                 ClauseKind = 0x0063
	OmpClauseDestroy               ClauseKind = 0x0064
	OmpClauseInit                  ClauseKind = 0x0065
	OmpClauseUse                   ClauseKind = 0x0066
	OmpClauseNovariants            ClauseKind = 0x0067
	OmpClauseNocontext             ClauseKind = 0x0068
	OmpClauseLink                  ClauseKind = 0x0069
	OmpClauseTo                    ClauseKind = 0x006A
	OmpClauseFrom                  ClauseKind = 0x006B
	OmpClauseEnter                 ClauseKind = 0x006C
	OmpClauseAt                    ClauseKind = 0x006D
	OmpClauseSeverity              ClauseKind = 0x006E
	OmpClauseMessage               ClauseKind = 0x006F
	OmpClauseTile                  ClauseKind = 0x0070
)

// OpenACC clauses.
const (
	AccClauseAuto        ClauseKind = 0x1001
	AccClauseCapture     ClauseKind = 0x1002
	AccClauseFinalize    ClauseKind = 0x1003
	AccClauseIfPresent   ClauseKind = 0x1004
	AccClauseIndependent ClauseKind = 0x1005
	AccClauseNohost      ClauseKind = 0x1006
	AccClauseRead        ClauseKind = 0x1007
	AccClauseSelf        ClauseKind = 0x1008
	AccClauseSeq         ClauseKind = 0x1009
	AccClauseWrite       ClauseKind = 0x100A

	AccClauseAsync      ClauseKind = 0x1010
	AccClauseBind       ClauseKind = 0x1011
	AccClauseDeviceType ClauseKind = 0x1012
	AccClauseGang       ClauseKind = 0x1013
	AccClauseVector     ClauseKind = 0x1014
	AccClauseWait       ClauseKind = 0x1015
	AccClauseWorker     ClauseKind = 0x1016

	AccClauseAttach           ClauseKind = 0x1020
	AccClauseCollapse         ClauseKind = 0x1021
	AccClauseCopy             ClauseKind = 0x1022
	AccClauseCopyin           ClauseKind = 0x1023
	AccClauseCopyout          ClauseKind = 0x1024
	AccClauseCreate           ClauseKind = 0x1025
	AccClausePresentOrCopy    ClauseKind = 0x1026
	AccClausePcopy            ClauseKind = 0x1027
	AccClausePresentOrCopyin  ClauseKind = 0x1028
	AccClausePcopyin          ClauseKind = 0x1029
	AccClausePresentOrCopyout ClauseKind = 0x102A
	AccClausePcopyout         ClauseKind = 0x102B
	AccClausePresentOrCreate  ClauseKind = 0x102C
	AccClausePcreate          ClauseKind = 0x102D
	AccClauseDefault          ClauseKind = 0x102E
	AccClauseDefaultAsync     ClauseKind = 0x102F
	AccClauseDelete           ClauseKind = 0x1030
	AccClauseDetach           ClauseKind = 0x1031
	AccClauseDevice           ClauseKind = 0x1032
	AccClauseDeviceNum        ClauseKind = 0x1033
	AccClauseDeviceResident   ClauseKind = 0x1034
	AccClauseDeviceptr        ClauseKind = 0x1035
	AccClauseFirstprivate     ClauseKind = 0x1036
	AccClauseHost             ClauseKind = 0x1037
	AccClauseIf               ClauseKind = 0x1038
	AccClauseLink             ClauseKind = 0x1039
	AccClauseNoCreate         ClauseKind = 0x103A
	AccClauseNumGangs         ClauseKind = 0x103B
	AccClauseNumWorkers       ClauseKind = 0x103C
	AccClausePresent          ClauseKind = 0x103D
	AccClausePrivate          ClauseKind = 0x103E
	AccClauseReduction        ClauseKind = 0x103F
	AccClauseTile             ClauseKind = 0x1040
	AccClauseUpdate           ClauseKind = 0x1041
	AccClauseUseDevice        ClauseKind = 0x1042
	AccClauseVectorLength     ClauseKind = 0x1043
)

var clauseNames = map[ClauseKind]string{
	OmpClauseNowait:            "nowait",
	OmpClauseUntied:            "untied",
	OmpClauseMergeable:         "mergeable",
	OmpClauseInbranch:          "inbranch",
	OmpClauseNotinbranch:       "notinbranch",
	OmpClauseNogroup:           "nogroup",
	OmpClauseInclusive:         "inclusive",
	OmpClauseExclusive:         "exclusive",
	OmpClauseReproducible:      "reproducible",
	OmpClauseDynamicAllocators: "dynamic_allocators",
	OmpClauseSeqCst:            "seq_cst",
	OmpClauseAcqRel:            "acq_rel",
	OmpClauseRelease:           "release",
	OmpClauseAcquire:           "acquire",
	OmpClauseRelaxed:           "relaxed",
	OmpClauseWeak:              "weak",
	OmpClauseCompare:           "compare",
	OmpClauseCapture:           "capture",
	OmpClauseRead:              "read",
	OmpClauseWrite:             "write",
	OmpClauseUpdate:            "update",
	OmpClauseFull:              "full",
	OmpClauseIndirect:          "indirect",

	OmpClauseReverseOffload:      "reverse_offload",
	OmpClauseUnifiedAddress:      "unified_address",
	OmpClauseUnifiedSharedMemory: "unified_shared_memory",
	OmpClauseSelfMaps:            "self_maps",

	OmpClauseOrdered: "ordered",
	OmpClauseUnroll:  "unroll",
	OmpClausePartial: "partial",

	OmpClausePrivate:               "private",
	OmpClauseFirstprivate:          "firstprivate",
	OmpClauseLastprivate:           "lastprivate",
	OmpClauseShared:                "shared",
	OmpClauseCopyin:                "copyin",
	OmpClauseCopyprivate:           "copyprivate",
	OmpClauseReduction:             "reduction",
	OmpClauseInReduction:           "in_reduction",
	OmpClauseTaskReduction:         "task_reduction",
	OmpClauseMap:                   "map",
	OmpClauseDepend:                "depend",
	OmpClauseSchedule:              "schedule",
	OmpClauseDistSchedule:          "dist_schedule",
	OmpClauseCollapse:              "collapse",
	OmpClauseNumThreads:            "num_threads",
	OmpClauseNumTeams:              "num_teams",
	OmpClauseNumTasks:              "num_tasks",
	OmpClauseThreadLimit:           "thread_limit",
	OmpClauseGrainsize:             "grainsize",
	OmpClausePriority:              "priority",
	OmpClauseFinal:                 "final",
	OmpClauseIf:                    "if",
	OmpClauseDefault:               "default",
	OmpClauseDefaultmap:            "defaultmap",
	OmpClauseProcBind:              "proc_bind",
	OmpClauseBind:                  "bind",
	OmpClauseDevice:                "device",
	OmpClauseDeviceType:            "device_type",
	OmpClauseIsDevicePtr:           "is_device_ptr",
	OmpClauseHasDeviceAddr:         "has_device_addr",
	OmpClauseUseDevicePtr:          "use_device_ptr",
	OmpClauseUseDeviceAddr:         "use_device_addr",
	OmpClauseUsesAllocators:        "uses_allocators",
	OmpClauseAllocate:              "allocate",
	OmpClauseAllocator:             "allocator",
	OmpClauseAlign:                 "align",
	OmpClauseAligned:               "aligned",
	OmpClauseLinear:                "linear",
	OmpClauseSafelen:               "safelen",
	OmpClauseSimdlen:               "simdlen",
	OmpClauseNontemporal:           "nontemporal",
	OmpClauseOrder:                 "order",
	OmpClauseAtomicDefaultMemOrder: "atomic_default_mem_order",
	OmpClauseHint:                  "hint",
	OmpClauseDetach:                "detach",
	OmpClauseAffinity:              "affinity",
	OmpClauseFilter:                "filter",
	OmpClauseSizes:                 "sizes",
	OmpClauseWhen:                  "when",
	OmpClauseOtherwise:             "otherwise",
	OmpClauseMatch:                 "match",
	OmpClauseLabel:                 "label",
	OmpClauseDestroy:               "destroy",
	OmpClauseInit:                  "init",
	OmpClauseUse:                   "use",
	OmpClauseNovariants:            "novariants",
	OmpClauseNocontext:             "nocontext",
	OmpClauseLink:                  "link",
	OmpClauseTo:                    "to",
	OmpClauseFrom:                  "from",
	OmpClauseEnter:                 "enter",
	OmpClauseAt:                    "at",
	OmpClauseSeverity:              "severity",
	OmpClauseMessage:               "message",
	OmpClauseTile:                  "tile",

	AccClauseAuto:        "auto",
	AccClauseCapture:     "capture",
	AccClauseFinalize:    "finalize",
	AccClauseIfPresent:   "if_present",
	AccClauseIndependent: "independent",
	AccClauseNohost:      "nohost",
	AccClauseRead:        "read",
	AccClauseSelf:        "self",
	AccClauseSeq:         "seq",
	AccClauseWrite:       "write",

	AccClauseAsync:      "async",
	AccClauseBind:       "bind",
	AccClauseDeviceType: "device_type",
	AccClauseGang:       "gang",
	AccClauseVector:     "vector",
	AccClauseWait:       "wait",
	AccClauseWorker:     "worker",

	AccClauseAttach:           "attach",
	AccClauseCollapse:         "collapse",
	AccClauseCopy:             "copy",
	AccClauseCopyin:           "copyin",
	AccClauseCopyout:          "copyout",
	AccClauseCreate:           "create",
	AccClausePresentOrCopy:    "present_or_copy",
	AccClausePcopy:            "pcopy",
	AccClausePresentOrCopyin:  "present_or_copyin",
	AccClausePcopyin:          "pcopyin",
	AccClausePresentOrCopyout: "present_or_copyout",
	AccClausePcopyout:         "pcopyout",
	AccClausePresentOrCreate:  "present_or_create",
	AccClausePcreate:          "pcreate",
	AccClauseDefault:          "default",
	AccClauseDefaultAsync:     "default_async",
	AccClauseDelete:           "delete",
	AccClauseDetach:           "detach",
	AccClauseDevice:           "device",
	AccClauseDeviceNum:        "device_num",
	AccClauseDeviceResident:   "device_resident",
	AccClauseDeviceptr:        "deviceptr",
	AccClauseFirstprivate:     "firstprivate",
	AccClauseHost:             "host",
	AccClauseIf:               "if",
	AccClauseLink:             "link",
	AccClauseNoCreate:         "no_create",
	AccClauseNumGangs:         "num_gangs",
	AccClauseNumWorkers:       "num_workers",
	AccClausePresent:          "present",
	AccClausePrivate:          "private",
	AccClauseReduction:        "reduction",
	AccClauseTile:             "tile",
	AccClauseUpdate:           "update",
	AccClauseUseDevice:        "use_device",
	AccClauseVectorLength:     "vector_length",
}

// String returns the clause spelling, or a numeric form for values
// outside the registry.
func (k ClauseKind) String() string {
	if name, ok := clauseNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ClauseKind(0x%04X)", uint16(k))
}

// Valid reports whether k is a registered clause of either dialect.
func (k ClauseKind) Valid() bool {
	_, ok := clauseNames[k]
	return ok
}

// Dialect returns the namespace partition k belongs to.
func (k ClauseKind) Dialect() Dialect {
	if k&0x1000 != 0 {
		return DialectOpenACC
	}
	return DialectOpenMP
}
