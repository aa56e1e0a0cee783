package parser

import (
	"prag/internal/ir"
	"prag/internal/token"
)

// ArgRule says whether a clause spelling carries a parenthesized
// argument: never, optionally, or always.
type ArgRule uint8

const (
	ArgNone ArgRule = iota
	ArgOptional
	ArgRequired
)

func (r ArgRule) String() string {
	switch r {
	case ArgNone:
		return "bare"
	case ArgOptional:
		return "optional"
	case ArgRequired:
		return "required"
	}
	return "argrule(invalid)"
}

type payloadFn func(*parser, scope, []token.Token) (ir.ClauseData, error)

type clauseEntry struct {
	kind  ir.ClauseKind
	rule  ArgRule
	parse payloadFn
}

func clausesFor(d ir.Dialect) map[string]clauseEntry {
	if d == ir.DialectOpenACC {
		return accClauses
	}
	return ompClauses
}

// LookupClause resolves one clause spelling against a dialect's
// registry, reporting its kind and argument rule.
func LookupClause(d ir.Dialect, name string) (ir.ClauseKind, ArgRule, bool) {
	entry, ok := clausesFor(d)[name]
	return entry.kind, entry.rule, ok
}

// The clause registries are closed; an unregistered keyword fails the
// line. Payload shapes follow the governing grammars, one parser per
// shape. Assigned in init rather than in var initializers: several
// payload parsers reach clausesFor, which reads these maps, so a
// composite-literal initializer would form an initialization cycle.
var ompClauses map[string]clauseEntry

var accClauses map[string]clauseEntry

func init() {
	ompClauses = map[string]clauseEntry{
		"nowait":                {kind: ir.OmpClauseNowait},
		"untied":                {kind: ir.OmpClauseUntied},
		"mergeable":             {kind: ir.OmpClauseMergeable},
		"inbranch":              {kind: ir.OmpClauseInbranch},
		"notinbranch":           {kind: ir.OmpClauseNotinbranch},
		"nogroup":               {kind: ir.OmpClauseNogroup},
		"reproducible":          {kind: ir.OmpClauseReproducible},
		"dynamic_allocators":    {kind: ir.OmpClauseDynamicAllocators},
		"reverse_offload":       {kind: ir.OmpClauseReverseOffload},
		"unified_address":       {kind: ir.OmpClauseUnifiedAddress},
		"unified_shared_memory": {kind: ir.OmpClauseUnifiedSharedMemory},
		"self_maps":             {kind: ir.OmpClauseSelfMaps},
		"seq_cst":               {kind: ir.OmpClauseSeqCst},
		"acq_rel":               {kind: ir.OmpClauseAcqRel},
		"release":               {kind: ir.OmpClauseRelease},
		"acquire":               {kind: ir.OmpClauseAcquire},
		"relaxed":               {kind: ir.OmpClauseRelaxed},
		"weak":                  {kind: ir.OmpClauseWeak},
		"compare":               {kind: ir.OmpClauseCompare},
		"capture":               {kind: ir.OmpClauseCapture},
		"read":                  {kind: ir.OmpClauseRead},
		"write":                 {kind: ir.OmpClauseWrite},
		"full":                  {kind: ir.OmpClauseFull},
		"indirect":              {kind: ir.OmpClauseIndirect},

		"ordered": {kind: ir.OmpClauseOrdered, rule: ArgOptional, parse: (*parser).parseExprArg},
		"unroll":  {kind: ir.OmpClauseUnroll, rule: ArgOptional, parse: (*parser).parseExprArg},
		"partial": {kind: ir.OmpClausePartial, rule: ArgOptional, parse: (*parser).parseExprArg},

		// Bare on atomic, carries a dependence type on depobj.
		"update": {kind: ir.OmpClauseUpdate, rule: ArgOptional, parse: (*parser).parseDependArg},

		"private":                  {kind: ir.OmpClausePrivate, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"firstprivate":             {kind: ir.OmpClauseFirstprivate, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"inclusive":                {kind: ir.OmpClauseInclusive, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"exclusive":                {kind: ir.OmpClauseExclusive, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"lastprivate":              {kind: ir.OmpClauseLastprivate, rule: ArgRequired, parse: (*parser).parseLastprivateArg},
		"shared":                   {kind: ir.OmpClauseShared, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"copyin":                   {kind: ir.OmpClauseCopyin, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"copyprivate":              {kind: ir.OmpClauseCopyprivate, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"reduction":                {kind: ir.OmpClauseReduction, rule: ArgRequired, parse: (*parser).parseReductionArg},
		"in_reduction":             {kind: ir.OmpClauseInReduction, rule: ArgRequired, parse: (*parser).parseReductionArg},
		"task_reduction":           {kind: ir.OmpClauseTaskReduction, rule: ArgRequired, parse: (*parser).parseReductionArg},
		"map":                      {kind: ir.OmpClauseMap, rule: ArgRequired, parse: (*parser).parseMapArg},
		"depend":                   {kind: ir.OmpClauseDepend, rule: ArgRequired, parse: (*parser).parseDependArg},
		"schedule":                 {kind: ir.OmpClauseSchedule, rule: ArgRequired, parse: (*parser).parseScheduleArg},
		"dist_schedule":            {kind: ir.OmpClauseDistSchedule, rule: ArgRequired, parse: (*parser).parseDistScheduleArg},
		"collapse":                 {kind: ir.OmpClauseCollapse, rule: ArgRequired, parse: (*parser).parseExprArg},
		"num_threads":              {kind: ir.OmpClauseNumThreads, rule: ArgRequired, parse: (*parser).parseExprArg},
		"num_teams":                {kind: ir.OmpClauseNumTeams, rule: ArgRequired, parse: (*parser).parseBoundsArg},
		"num_tasks":                {kind: ir.OmpClauseNumTasks, rule: ArgRequired, parse: (*parser).parseExprArg},
		"thread_limit":             {kind: ir.OmpClauseThreadLimit, rule: ArgRequired, parse: (*parser).parseExprArg},
		"grainsize":                {kind: ir.OmpClauseGrainsize, rule: ArgRequired, parse: (*parser).parseExprArg},
		"priority":                 {kind: ir.OmpClausePriority, rule: ArgRequired, parse: (*parser).parseExprArg},
		"final":                    {kind: ir.OmpClauseFinal, rule: ArgRequired, parse: (*parser).parseExprArg},
		"if":                       {kind: ir.OmpClauseIf, rule: ArgRequired, parse: (*parser).parseIfArg},
		"default":                  {kind: ir.OmpClauseDefault, rule: ArgRequired, parse: (*parser).parseDefaultArg},
		"defaultmap":               {kind: ir.OmpClauseDefaultmap, rule: ArgRequired, parse: (*parser).parseDefaultmapArg},
		"proc_bind":                {kind: ir.OmpClauseProcBind, rule: ArgRequired, parse: (*parser).parseProcBindArg},
		"bind":                     {kind: ir.OmpClauseBind, rule: ArgRequired, parse: (*parser).parseBindArg},
		"device":                   {kind: ir.OmpClauseDevice, rule: ArgRequired, parse: (*parser).parseExprArg},
		"device_type":              {kind: ir.OmpClauseDeviceType, rule: ArgRequired, parse: (*parser).parseDeviceTypeArg},
		"is_device_ptr":            {kind: ir.OmpClauseIsDevicePtr, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"has_device_addr":          {kind: ir.OmpClauseHasDeviceAddr, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"use_device_ptr":           {kind: ir.OmpClauseUseDevicePtr, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"use_device_addr":          {kind: ir.OmpClauseUseDeviceAddr, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"uses_allocators":          {kind: ir.OmpClauseUsesAllocators, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"allocate":                 {kind: ir.OmpClauseAllocate, rule: ArgRequired, parse: (*parser).parseAllocateArg},
		"allocator":                {kind: ir.OmpClauseAllocator, rule: ArgRequired, parse: (*parser).parseExprArg},
		"align":                    {kind: ir.OmpClauseAlign, rule: ArgRequired, parse: (*parser).parseExprArg},
		"aligned":                  {kind: ir.OmpClauseAligned, rule: ArgRequired, parse: (*parser).parseAlignedArg},
		"linear":                   {kind: ir.OmpClauseLinear, rule: ArgRequired, parse: (*parser).parseLinearArg},
		"safelen":                  {kind: ir.OmpClauseSafelen, rule: ArgRequired, parse: (*parser).parseExprArg},
		"simdlen":                  {kind: ir.OmpClauseSimdlen, rule: ArgRequired, parse: (*parser).parseExprArg},
		"nontemporal":              {kind: ir.OmpClauseNontemporal, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"order":                    {kind: ir.OmpClauseOrder, rule: ArgRequired, parse: (*parser).parseOrderArg},
		"atomic_default_mem_order": {kind: ir.OmpClauseAtomicDefaultMemOrder, rule: ArgRequired, parse: (*parser).parseMemOrderArg},
		"hint":                     {kind: ir.OmpClauseHint, rule: ArgRequired, parse: (*parser).parseExprArg},
		"detach":                   {kind: ir.OmpClauseDetach, rule: ArgRequired, parse: (*parser).parseExprArg},
		"affinity":                 {kind: ir.OmpClauseAffinity, rule: ArgRequired, parse: (*parser).parseExprListArg},
		"filter":                   {kind: ir.OmpClauseFilter, rule: ArgRequired, parse: (*parser).parseExprArg},
		"sizes":                    {kind: ir.OmpClauseSizes, rule: ArgRequired, parse: (*parser).parseExprListArg},
		"when":                     {kind: ir.OmpClauseWhen, rule: ArgRequired, parse: (*parser).parseWhenArg},
		"otherwise":                {kind: ir.OmpClauseOtherwise, rule: ArgRequired, parse: (*parser).parseOtherwiseArg},
		"match":                    {kind: ir.OmpClauseMatch, rule: ArgRequired, parse: (*parser).parseMatchArg},
		"label":                    {kind: ir.OmpClauseLabel, rule: ArgRequired, parse: (*parser).parseExprArg},
		// Bare on depobj, names the object on interop.
		"destroy":    {kind: ir.OmpClauseDestroy, rule: ArgOptional, parse: (*parser).parseExprArg},
		"init":       {kind: ir.OmpClauseInit, rule: ArgRequired, parse: (*parser).parseExprListArg},
		"use":        {kind: ir.OmpClauseUse, rule: ArgRequired, parse: (*parser).parseExprArg},
		"novariants": {kind: ir.OmpClauseNovariants, rule: ArgRequired, parse: (*parser).parseExprArg},
		"nocontext":  {kind: ir.OmpClauseNocontext, rule: ArgRequired, parse: (*parser).parseExprArg},
		"link":       {kind: ir.OmpClauseLink, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"to":         {kind: ir.OmpClauseTo, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"from":       {kind: ir.OmpClauseFrom, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"enter":      {kind: ir.OmpClauseEnter, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"at":         {kind: ir.OmpClauseAt, rule: ArgRequired, parse: (*parser).parseExprArg},
		"severity":   {kind: ir.OmpClauseSeverity, rule: ArgRequired, parse: (*parser).parseExprArg},
		"message":    {kind: ir.OmpClauseMessage, rule: ArgRequired, parse: (*parser).parseExprArg},
		"tile":       {kind: ir.OmpClauseTile, rule: ArgRequired, parse: (*parser).parseExprListArg},
	}

	accClauses = map[string]clauseEntry{
		"auto":        {kind: ir.AccClauseAuto},
		"capture":     {kind: ir.AccClauseCapture},
		"finalize":    {kind: ir.AccClauseFinalize},
		"if_present":  {kind: ir.AccClauseIfPresent},
		"independent": {kind: ir.AccClauseIndependent},
		"nohost":      {kind: ir.AccClauseNohost},
		"read":        {kind: ir.AccClauseRead},
		"seq":         {kind: ir.AccClauseSeq},
		"update":      {kind: ir.AccClauseUpdate},
		"write":       {kind: ir.AccClauseWrite},

		"async":       {kind: ir.AccClauseAsync, rule: ArgOptional, parse: (*parser).parseExprArg},
		"device_type": {kind: ir.AccClauseDeviceType, rule: ArgOptional, parse: (*parser).parseExprListArg},
		"gang":        {kind: ir.AccClauseGang, rule: ArgOptional, parse: (*parser).parseGangArg},
		"self":        {kind: ir.AccClauseSelf, rule: ArgOptional, parse: (*parser).parseItemListArg},
		"vector":      {kind: ir.AccClauseVector, rule: ArgOptional, parse: (*parser).parseVectorArg},
		"wait":        {kind: ir.AccClauseWait, rule: ArgOptional, parse: (*parser).parseExprListArg},
		"worker":      {kind: ir.AccClauseWorker, rule: ArgOptional, parse: (*parser).parseWorkerArg},

		"attach":             {kind: ir.AccClauseAttach, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"bind":               {kind: ir.AccClauseBind, rule: ArgRequired, parse: (*parser).parseExprArg},
		"collapse":           {kind: ir.AccClauseCollapse, rule: ArgRequired, parse: (*parser).parseExprArg},
		"copy":               {kind: ir.AccClauseCopy, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"copyin":             {kind: ir.AccClauseCopyin, rule: ArgRequired, parse: (*parser).parseReadonlyListArg},
		"copyout":            {kind: ir.AccClauseCopyout, rule: ArgRequired, parse: (*parser).parseZeroListArg},
		"create":             {kind: ir.AccClauseCreate, rule: ArgRequired, parse: (*parser).parseZeroListArg},
		"present_or_copy":    {kind: ir.AccClausePresentOrCopy, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"pcopy":              {kind: ir.AccClausePcopy, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"present_or_copyin":  {kind: ir.AccClausePresentOrCopyin, rule: ArgRequired, parse: (*parser).parseReadonlyListArg},
		"pcopyin":            {kind: ir.AccClausePcopyin, rule: ArgRequired, parse: (*parser).parseReadonlyListArg},
		"present_or_copyout": {kind: ir.AccClausePresentOrCopyout, rule: ArgRequired, parse: (*parser).parseZeroListArg},
		"pcopyout":           {kind: ir.AccClausePcopyout, rule: ArgRequired, parse: (*parser).parseZeroListArg},
		"present_or_create":  {kind: ir.AccClausePresentOrCreate, rule: ArgRequired, parse: (*parser).parseZeroListArg},
		"pcreate":            {kind: ir.AccClausePcreate, rule: ArgRequired, parse: (*parser).parseZeroListArg},
		"default":            {kind: ir.AccClauseDefault, rule: ArgRequired, parse: (*parser).parseDefaultArg},
		"default_async":      {kind: ir.AccClauseDefaultAsync, rule: ArgRequired, parse: (*parser).parseExprArg},
		"delete":             {kind: ir.AccClauseDelete, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"detach":             {kind: ir.AccClauseDetach, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"device":             {kind: ir.AccClauseDevice, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"device_num":         {kind: ir.AccClauseDeviceNum, rule: ArgRequired, parse: (*parser).parseExprArg},
		"device_resident":    {kind: ir.AccClauseDeviceResident, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"deviceptr":          {kind: ir.AccClauseDeviceptr, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"firstprivate":       {kind: ir.AccClauseFirstprivate, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"host":               {kind: ir.AccClauseHost, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"if":                 {kind: ir.AccClauseIf, rule: ArgRequired, parse: (*parser).parseIfArg},
		"link":               {kind: ir.AccClauseLink, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"no_create":          {kind: ir.AccClauseNoCreate, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"num_gangs":          {kind: ir.AccClauseNumGangs, rule: ArgRequired, parse: (*parser).parseExprArg},
		"num_workers":        {kind: ir.AccClauseNumWorkers, rule: ArgRequired, parse: (*parser).parseExprArg},
		"present":            {kind: ir.AccClausePresent, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"private":            {kind: ir.AccClausePrivate, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"reduction":          {kind: ir.AccClauseReduction, rule: ArgRequired, parse: (*parser).parseReductionArg},
		"tile":               {kind: ir.AccClauseTile, rule: ArgRequired, parse: (*parser).parseExprListArg},
		"use_device":         {kind: ir.AccClauseUseDevice, rule: ArgRequired, parse: (*parser).parseItemListArg},
		"vector_length":      {kind: ir.AccClauseVectorLength, rule: ArgRequired, parse: (*parser).parseExprArg},
	}
}
