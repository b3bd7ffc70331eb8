package token

import (
	"fmt"
	"strings"
)

var kindNames = [kindCount]string{
	None:            "NONE",
	Word:            "WORD",
	Type:            "TYPE",
	Preproc:         "PREPROC",
	Access:          "ACCESS",
	Align:           "ALIGN",
	Arith:           "ARITH",
	As:              "AS",
	Asm:             "ASM",
	Assert:          "ASSERT",
	Attribute:       "ATTRIBUTE",
	Autoreleasepool: "AUTORELEASEPOOL",
	Base:            "BASE",
	Body:            "BODY",
	Break:           "BREAK",
	Case:            "CASE",
	Catch:           "CATCH",
	Char:            "CHAR",
	Class:           "CLASS",
	CngHasInc:       "CNG_HASINC",
	CngHasIncN:      "CNG_HASINCN",
	CommentEmbed:    "COMMENT_EMBED",
	Construct:       "CONSTRUCT",
	Continue:        "CONTINUE",
	Debug:           "DEBUG",
	Debugger:        "DEBUGGER",
	Declspec:        "DECLSPEC",
	Decltype:        "DECLTYPE",
	Default:         "DEFAULT",
	Defined:         "DEFINED",
	Delegate:        "DELEGATE",
	Delete:          "DELETE",
	DI:              "DI",
	HI:              "HI",
	QI:              "QI",
	SI:              "SI",
	Do:              "DO",
	DCast:           "D_CAST",
	DMacro:          "D_MACRO",
	DModule:         "D_MODULE",
	DScope:          "D_SCOPE",
	DScopeIf:        "D_SCOPE_IF",
	DVersion:        "D_VERSION",
	DVersionIf:      "D_VERSION_IF",
	DWith:           "D_WITH",
	Else:            "ELSE",
	ElseIf:          "ELSEIF",
	Enum:            "ENUM",
	Export:          "EXPORT",
	Extern:          "EXTERN",
	Finally:         "FINALLY",
	Fixed:           "FIXED",
	For:             "FOR",
	Forward:         "FORWARD",
	Friend:          "FRIEND",
	Function:        "FUNCTION",
	GetSet:          "GETSET",
	Goto:            "GOTO",
	If:              "IF",
	Import:          "IMPORT",
	In:              "IN",
	Invariant:       "INVARIANT",
	Lazy:            "LAZY",
	Lock:            "LOCK",
	Macro:           "MACRO",
	MacroOpen:       "MACRO_OPEN",
	MacroClose:      "MACRO_CLOSE",
	MacroElse:       "MACRO_ELSE",
	Namespace:       "NAMESPACE",
	Native:          "NATIVE",
	New:             "NEW",
	Noexcept:        "NOEXCEPT",
	Nothrow:         "NOTHROW",
	OCAvailable:     "OC_AVAILABLE",
	OCDynamic:       "OC_DYNAMIC",
	OCEnd:           "OC_END",
	OCImpl:          "OC_IMPL",
	OCIntf:          "OC_INTF",
	OCProperty:      "OC_PROPERTY",
	OCPropertyAttr:  "OC_PROPERTY_ATTR",
	OCProtocol:      "OC_PROTOCOL",
	OCSel:           "OC_SEL",
	Operator:        "OPERATOR",
	Package:         "PACKAGE",
	PPAsm:           "PP_ASM",
	PPAssert:        "PP_ASSERT",
	PPDefine:        "PP_DEFINE",
	PPDefined:       "PP_DEFINED",
	PPElse:          "PP_ELSE",
	PPEmit:          "PP_EMIT",
	PPEndif:         "PP_ENDIF",
	PPEndInput:      "PP_ENDINPUT",
	PPEndRegion:     "PP_ENDREGION",
	PPError:         "PP_ERROR",
	PPFile:          "PP_FILE",
	PPIf:            "PP_IF",
	PPInclude:       "PP_INCLUDE",
	PPLine:          "PP_LINE",
	PPPragma:        "PP_PRAGMA",
	PPProperty:      "PP_PROPERTY",
	PPRegion:        "PP_REGION",
	PPSection:       "PP_SECTION",
	PPUndef:         "PP_UNDEF",
	QEmit:           "Q_EMIT",
	QForever:        "Q_FOREVER",
	QGadget:         "Q_GADGET",
	Qualifier:       "QUALIFIER",
	Return:          "RETURN",
	SArith:          "SARITH",
	SAssign:         "SASSIGN",
	SBool:           "SBOOL",
	SCompare:        "SCOMPARE",
	Sizeof:          "SIZEOF",
	State:           "STATE",
	Stock:           "STOCK",
	Struct:          "STRUCT",
	Super:           "SUPER",
	Switch:          "SWITCH",
	Synchronized:    "SYNCHRONIZED",
	Tagof:           "TAGOF",
	Template:        "TEMPLATE",
	This:            "THIS",
	Throw:           "THROW",
	Try:             "TRY",
	TypeCast:        "TYPE_CAST",
	Typedef:         "TYPEDEF",
	Typename:        "TYPENAME",
	Union:           "UNION",
	Unittest:        "UNITTEST",
	Unsafe:          "UNSAFE",
	Using:           "USING",
	UsingStmt:       "USING_STMT",
	Volatile:        "VOLATILE",
	When:            "WHEN",
	Where:           "WHERE",
	While:           "WHILE",
	WhileOfDo:       "WHILE_OF_DO",
	WordUnderscore:  "WORD_",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k belongs to the vocabulary.
func (k Kind) Valid() bool { return k < kindCount }

// IsPreproc reports whether k is a preprocessor directive name.
func (k Kind) IsPreproc() bool { return k >= PPAsm && k <= PPUndef }

// ParseKind resolves a category name. Matching is case-insensitive and an
// optional "CT_" prefix is accepted.
func ParseKind(name string) (Kind, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	key = strings.TrimPrefix(key, "CT_")
	if k, ok := kindsByName[key]; ok {
		return k, nil
	}
	return None, fmt.Errorf("unknown token category %q", name)
}

// Kinds returns every category in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := None; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
