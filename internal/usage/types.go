package usage

// InputCursor is the part of a reader an error needs to render its context.
type InputCursor interface {
	String() string
	Cursor() int
}

// ErrorType identifies a family of errors so callers can match them programmatically.
type ErrorType interface {
	Name() string
	Category() Category
}

type baseType struct {
	name     string
	category Category
}

func (t baseType) Name() string       { return t.name }
func (t baseType) Category() Category { return t.category }
func (t baseType) String() string     { return t.name }

func (t baseType) newError(owner ErrorType, message string) *Error {
	return &Error{Type: owner, Message: message, Cursor: -1}
}

func (t baseType) newErrorAt(owner ErrorType, message string, in InputCursor) *Error {
	return &Error{
		Type:       owner,
		Message:    message,
		Input:      in.String(),
		Cursor:     in.Cursor(),
		hasContext: true,
	}
}

// SimpleType produces errors with a fixed message.
type SimpleType struct {
	baseType
	message string
}

func NewSimpleType(name string, category Category, message string) *SimpleType {
	return &SimpleType{baseType: baseType{name: name, category: category}, message: message}
}

func (t *SimpleType) Create() *Error {
	return t.newError(t, t.message)
}

func (t *SimpleType) CreateWithContext(in InputCursor) *Error {
	return t.newErrorAt(t, t.message, in)
}

// Dynamic1Type renders its message from one argument.
type Dynamic1Type struct {
	baseType
	format func(a any) string
}

func NewDynamic1Type(name string, category Category, format func(a any) string) *Dynamic1Type {
	return &Dynamic1Type{baseType: baseType{name: name, category: category}, format: format}
}

func (t *Dynamic1Type) Create(a any) *Error {
	return t.newError(t, t.format(a))
}

func (t *Dynamic1Type) CreateWithContext(in InputCursor, a any) *Error {
	return t.newErrorAt(t, t.format(a), in)
}

// Dynamic2Type renders its message from two arguments.
type Dynamic2Type struct {
	baseType
	format func(a, b any) string
}

func NewDynamic2Type(name string, category Category, format func(a, b any) string) *Dynamic2Type {
	return &Dynamic2Type{baseType: baseType{name: name, category: category}, format: format}
}

func (t *Dynamic2Type) Create(a, b any) *Error {
	return t.newError(t, t.format(a, b))
}

func (t *Dynamic2Type) CreateWithContext(in InputCursor, a, b any) *Error {
	return t.newErrorAt(t, t.format(a, b), in)
}

// Dynamic3Type renders its message from three arguments.
type Dynamic3Type struct {
	baseType
	format func(a, b, c any) string
}

func NewDynamic3Type(name string, category Category, format func(a, b, c any) string) *Dynamic3Type {
	return &Dynamic3Type{baseType: baseType{name: name, category: category}, format: format}
}

func (t *Dynamic3Type) Create(a, b, c any) *Error {
	return t.newError(t, t.format(a, b, c))
}

func (t *Dynamic3Type) CreateWithContext(in InputCursor, a, b, c any) *Error {
	return t.newErrorAt(t, t.format(a, b, c), in)
}

// DynamicNType renders its message from any number of arguments.
type DynamicNType struct {
	baseType
	format func(args ...any) string
}

func NewDynamicNType(name string, category Category, format func(args ...any) string) *DynamicNType {
	return &DynamicNType{baseType: baseType{name: name, category: category}, format: format}
}

func (t *DynamicNType) Create(args ...any) *Error {
	return t.newError(t, t.format(args...))
}

func (t *DynamicNType) CreateWithContext(in InputCursor, args ...any) *Error {
	return t.newErrorAt(t, t.format(args...), in)
}

var (
	_ ErrorType = (*SimpleType)(nil)
	_ ErrorType = (*Dynamic1Type)(nil)
	_ ErrorType = (*Dynamic2Type)(nil)
	_ ErrorType = (*Dynamic3Type)(nil)
	_ ErrorType = (*DynamicNType)(nil)
)
