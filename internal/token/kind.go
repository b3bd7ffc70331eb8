package token

// Kind represents the category of a lexeme.
type Kind uint8

const (
	// None marks the absence of a lexeme.
	None Kind = iota
	// Word is an ordinary identifier.
	Word
	// Type is a type name; custom keyword files register into this category.
	Type
	// Preproc marks the '#' that opens a preprocessor directive.
	Preproc

	Access
	Align
	Arith
	As
	Asm
	Assert
	Attribute
	Autoreleasepool
	Base
	Body
	Break
	Case
	Catch
	Char
	Class
	CngHasInc  // __has_include
	CngHasIncN // __has_include_next
	CommentEmbed
	Construct
	Continue
	Debug
	Debugger
	Declspec
	Decltype
	Default
	Defined
	Delegate
	Delete
	DI // GCC machine-mode attributes: __DI__, __HI__, __QI__, __SI__
	HI
	QI
	SI
	Do
	DCast
	DMacro
	DModule
	DScope
	DScopeIf
	DVersion
	DVersionIf
	DWith
	Else
	ElseIf
	Enum
	Export
	Extern
	Finally
	Fixed
	For
	Forward
	Friend
	Function
	GetSet
	Goto
	If
	Import
	In
	Invariant
	Lazy
	Lock
	Macro
	MacroOpen
	MacroClose
	MacroElse
	Namespace
	Native
	New
	Noexcept
	Nothrow
	OCAvailable
	OCDynamic
	OCEnd
	OCImpl
	OCIntf
	OCProperty
	OCPropertyAttr
	OCProtocol
	OCSel
	Operator
	Package

	// Preprocessor directive names; only produced inside a directive.
	PPAsm
	PPAssert
	PPDefine
	PPDefined
	PPElse
	PPEmit
	PPEndif
	PPEndInput
	PPEndRegion
	PPError
	PPFile
	PPIf
	PPInclude
	PPLine
	PPPragma
	PPProperty
	PPRegion
	PPSection
	PPUndef

	QEmit
	QForever
	QGadget
	Qualifier
	Return
	SArith
	SAssign
	SBool
	SCompare
	Sizeof
	State
	Stock
	Struct
	Super
	Switch
	Synchronized
	Tagof
	Template
	This
	Throw
	Try
	TypeCast
	Typedef
	Typename
	Union
	Unittest
	Unsafe
	Using
	UsingStmt
	Volatile
	When
	Where
	While
	WhileOfDo
	WordUnderscore // __word__

	kindCount
)
