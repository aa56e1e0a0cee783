package ir

import "strings"

// ParameterKind discriminates the payload carried between the parentheses
// that follow a directive name, before any clauses.
type ParameterKind uint8

const (
	// ParamConstruct names another directive, as in cancel or
	// cancellation point.
	ParamConstruct ParameterKind = iota
	// ParamName is a bare identifier, as in critical(name) or
	// routine(name).
	ParamName
	// ParamItems is a list of variables, as in flush(a, b) or
	// threadprivate(x, y).
	ParamItems
	// ParamExprs is a list of expressions, as in wait(1, 2).
	ParamExprs
	// ParamReduction is a declare reduction body.
	ParamReduction
	// ParamMapper is a declare mapper body.
	ParamMapper
)

var parameterKindNames = [...]string{
	ParamConstruct: "construct",
	ParamName:      "name",
	ParamItems:     "items",
	ParamExprs:     "exprs",
	ParamReduction: "reduction",
	ParamMapper:    "mapper",
}

func (k ParameterKind) String() string {
	if int(k) < len(parameterKindNames) {
		return parameterKindNames[k]
	}
	return "parameter(invalid)"
}

// DirectiveParameter is the optional parenthesized argument of a directive
// itself, distinct from its clause list. Only the fields selected by Kind
// are meaningful.
type DirectiveParameter struct {
	Kind ParameterKind

	// Construct is set for ParamConstruct.
	Construct DirectiveKind

	// Name is set for ParamName and holds the identifier verbatim.
	Name string

	// Items is set for ParamItems.
	Items []Variable

	// Exprs is set for ParamExprs.
	Exprs []Expression

	// Readonly marks an OpenACC cache directive argument that carried
	// the readonly: prefix.
	Readonly bool

	// Reduction is set for ParamReduction.
	Reduction *ReductionSpec

	// Mapper is set for ParamMapper.
	Mapper *MapperSpec
}

// ConstructParameter builds a ParamConstruct parameter.
func ConstructParameter(kind DirectiveKind) *DirectiveParameter {
	return &DirectiveParameter{Kind: ParamConstruct, Construct: kind}
}

// NameParameter builds a ParamName parameter.
func NameParameter(name string) *DirectiveParameter {
	return &DirectiveParameter{Kind: ParamName, Name: strings.TrimSpace(name)}
}

// ItemsParameter builds a ParamItems parameter.
func ItemsParameter(items []Variable) *DirectiveParameter {
	return &DirectiveParameter{Kind: ParamItems, Items: items}
}

// ExprsParameter builds a ParamExprs parameter.
func ExprsParameter(exprs []Expression) *DirectiveParameter {
	return &DirectiveParameter{Kind: ParamExprs, Exprs: exprs}
}

// ReductionSpec is the body of a declare reduction directive:
// the operator identifier, the type list, the combiner expression and an
// optional initializer clause.
type ReductionSpec struct {
	Op          ReductionOperator
	Custom      string
	Types       []string
	Combiner    Expression
	Initializer *Expression
}

// Identifier returns the reduction operator spelling, preferring the
// custom identifier when the operator is ReduceCustom.
func (s *ReductionSpec) Identifier() string {
	if s.Op == ReduceCustom && s.Custom != "" {
		return s.Custom
	}
	return s.Op.String()
}

// MapperSpec is the body of a declare mapper directive. Decl holds the
// type and variable declarator text verbatim; it is never decomposed.
type MapperSpec struct {
	ID   string
	Decl string
}
