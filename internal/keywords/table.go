package keywords

import (
	"kwclass/internal/dialect"
	"kwclass/internal/token"
)

// static is the compiled-in keyword corpus. It must stay sorted by Tag in
// byte order; entries sharing a Tag are alternatives told apart by dialect
// and by the dialect.PP bit. VerifySorted and VerifyRuns guard both rules.
var static = []Entry{
	{"@autoreleasepool", token.Autoreleasepool, dialect.OC},
	{"@available", token.OCAvailable, dialect.OC},
	{"@catch", token.Catch, dialect.OC},
	{"@dynamic", token.OCDynamic, dialect.OC},
	{"@end", token.OCEnd, dialect.OC},
	{"@finally", token.Finally, dialect.OC},
	{"@implementation", token.OCImpl, dialect.OC},
	{"@interface", token.OCIntf, dialect.OC},
	{"@interface", token.Class, dialect.Java},
	{"@private", token.Access, dialect.OC},
	{"@property", token.OCProperty, dialect.OC},
	{"@protected", token.Access, dialect.OC},
	{"@protocol", token.OCProtocol, dialect.OC},
	{"@public", token.Access, dialect.OC},
	{"@selector", token.OCSel, dialect.OC},
	{"@synchronized", token.Synchronized, dialect.OC},
	{"@synthesize", token.OCDynamic, dialect.OC},
	{"@throw", token.Throw, dialect.OC},
	{"@try", token.Try, dialect.OC},
	{"API_AVAILABLE", token.Attribute, dialect.OC},
	{"API_DEPRECATED", token.Attribute, dialect.OC},
	{"API_DEPRECATED_WITH_REPLACEMENT", token.Attribute, dialect.OC},
	{"API_UNAVAILABLE", token.Attribute, dialect.OC},
	{"BOOL", token.Type, dialect.OC},
	{"INT16_C", token.Type, dialect.CPP},
	{"INT32_C", token.Type, dialect.CPP},
	{"INT64_C", token.Type, dialect.CPP},
	{"INT8_C", token.Type, dialect.CPP},
	{"INTMAX_C", token.Type, dialect.CPP},
	{"NS_ENUM", token.Enum, dialect.OC},
	{"NS_OPTIONS", token.Enum, dialect.OC},
	{"Q_EMIT", token.QEmit, dialect.CPP},
	{"Q_FOREACH", token.For, dialect.CPP},
	{"Q_FOREVER", token.QForever, dialect.CPP},
	{"Q_GADGET", token.QGadget, dialect.CPP},
	{"Q_OBJECT", token.CommentEmbed, dialect.CPP},
	{"Q_SIGNALS", token.Access, dialect.CPP},
	{"UINT16_C", token.Type, dialect.CPP},
	{"UINT32_C", token.Type, dialect.CPP},
	{"UINT64_C", token.Type, dialect.CPP},
	{"UINT8_C", token.Type, dialect.CPP},
	{"UINTMAX_C", token.Type, dialect.CPP},
	{"_Bool", token.Type, dialect.C | dialect.CPP},
	{"_Complex", token.Type, dialect.C | dialect.CPP},
	{"_Imaginary", token.Type, dialect.C | dialect.CPP},
	{"_Nonnull", token.Qualifier, dialect.OC},
	{"_Null_unspecified", token.Qualifier, dialect.OC},
	{"_Nullable", token.Qualifier, dialect.OC},
	{"_Pragma", token.PPPragma, dialect.All | dialect.PP},
	{"__DI__", token.DI, dialect.C | dialect.CPP},
	{"__HI__", token.HI, dialect.C | dialect.CPP},
	{"__QI__", token.QI, dialect.C | dialect.CPP},
	{"__SI__", token.SI, dialect.C | dialect.CPP},
	{"__asm__", token.Asm, dialect.C | dialect.CPP},
	{"__attribute__", token.Attribute, dialect.C | dialect.CPP | dialect.OC},
	{"__autoreleasing", token.Qualifier, dialect.C | dialect.CPP},
	{"__block", token.Qualifier, dialect.C | dialect.CPP | dialect.OC},
	{"__bridge", token.Qualifier, dialect.C | dialect.CPP},
	{"__bridge_retained", token.Qualifier, dialect.C | dialect.CPP},
	{"__bridge_transfer", token.Qualifier, dialect.C | dialect.CPP},
	{"__const__", token.Qualifier, dialect.C | dialect.CPP},
	{"__declspec", token.Declspec, dialect.C | dialect.CPP},
	{"__except", token.Catch, dialect.C | dialect.CPP},
	{"__finally", token.Finally, dialect.C | dialect.CPP},
	{"__has_include", token.CngHasInc, dialect.C | dialect.CPP | dialect.OC | dialect.PP},
	{"__has_include_next", token.CngHasIncN, dialect.C | dialect.CPP | dialect.PP},
	{"__inline__", token.Qualifier, dialect.C | dialect.CPP},
	{"__nonnull", token.Qualifier, dialect.OC},
	{"__nothrow__", token.Nothrow, dialect.C | dialect.CPP},
	{"__null_unspecified", token.Qualifier, dialect.OC},
	{"__nullable", token.Qualifier, dialect.OC},
	{"__pragma", token.PPPragma, dialect.All | dialect.PP},
	{"__restrict", token.Qualifier, dialect.C | dialect.CPP},
	{"__signed__", token.Type, dialect.C | dialect.CPP},
	{"__strong", token.Qualifier, dialect.C | dialect.CPP},
	{"__thread", token.Qualifier, dialect.C | dialect.CPP},
	{"__traits", token.Qualifier, dialect.D},
	{"__try", token.Try, dialect.C | dialect.CPP},
	{"__typeof", token.Decltype, dialect.C | dialect.CPP | dialect.OC},
	{"__typeof__", token.Decltype, dialect.C | dialect.CPP},
	{"__unsafe_unretained", token.Qualifier, dialect.OC},
	{"__unused", token.Attribute, dialect.C | dialect.CPP},
	{"__volatile__", token.Qualifier, dialect.C | dialect.CPP},
	{"__weak", token.Qualifier, dialect.C | dialect.CPP},
	{"__word__", token.WordUnderscore, dialect.C | dialect.CPP},
	{"abstract", token.Qualifier, dialect.CS | dialect.D | dialect.Java | dialect.Vala | dialect.ECMA},
	{"add", token.GetSet, dialect.CS},
	{"alias", token.Using, dialect.D},
	{"align", token.Align, dialect.D},
	{"alignof", token.Sizeof, dialect.CPP},
	{"and", token.SBool, dialect.CPP},
	{"and_eq", token.SAssign, dialect.CPP},
	{"as", token.As, dialect.CS | dialect.Vala},
	{"asm", token.Asm, dialect.C | dialect.CPP | dialect.D},
	{"asm", token.PPAsm, dialect.All | dialect.PP},
	{"assert", token.Assert, dialect.Java},
	{"assert", token.Function, dialect.D | dialect.Pawn},
	{"assert", token.PPAssert, dialect.Pawn | dialect.PP},
	{"auto", token.Type, dialect.C | dialect.CPP | dialect.D},
	{"base", token.Base, dialect.CS | dialect.Vala},
	{"bit", token.Type, dialect.D},
	{"bitand", token.Arith, dialect.C | dialect.CPP},
	{"bitor", token.Arith, dialect.C | dialect.CPP},
	{"body", token.Body, dialect.D},
	{"bool", token.Type, dialect.C | dialect.CPP | dialect.CS | dialect.Vala},
	{"boolean", token.Type, dialect.Java | dialect.ECMA},
	{"break", token.Break, dialect.All},
	{"byte", token.Type, dialect.CS | dialect.D | dialect.Java | dialect.ECMA},
	{"callback", token.Qualifier, dialect.Vala},
	{"case", token.Case, dialect.All},
	{"cast", token.DCast, dialect.D},
	{"catch", token.Catch, dialect.CPP | dialect.CS | dialect.Vala | dialect.D | dialect.Java | dialect.ECMA},
	{"cdouble", token.Type, dialect.D},
	{"cent", token.Type, dialect.D},
	{"cfloat", token.Type, dialect.D},
	{"char", token.Char, dialect.Pawn},
	{"char", token.Type, dialect.AllC},
	{"checked", token.Qualifier, dialect.CS},
	{"class", token.Class, dialect.CPP | dialect.CS | dialect.D | dialect.Java | dialect.Vala | dialect.ECMA},
	{"compl", token.Arith, dialect.CPP},
	{"const", token.Qualifier, dialect.All},
	{"const_cast", token.TypeCast, dialect.CPP},
	{"constexpr", token.Qualifier, dialect.CPP},
	{"construct", token.Construct, dialect.Vala},
	{"continue", token.Continue, dialect.All},
	{"creal", token.Type, dialect.D},
	{"dchar", token.Type, dialect.D},
	{"debug", token.Debug, dialect.D},
	{"debugger", token.Debugger, dialect.ECMA},
	{"decltype", token.Decltype, dialect.CPP},
	{"default", token.Default, dialect.All},
	{"define", token.PPDefine, dialect.All | dialect.PP},
	{"defined", token.Defined, dialect.Pawn},
	{"defined", token.PPDefined, dialect.AllC | dialect.PP},
	{"delegate", token.Delegate, dialect.CS | dialect.Vala | dialect.D},
	{"delete", token.Delete, dialect.CPP | dialect.D | dialect.ECMA | dialect.Vala},
	{"deprecated", token.Qualifier, dialect.D},
	{"do", token.Do, dialect.All},
	{"double", token.Type, dialect.AllC},
	{"dynamic_cast", token.TypeCast, dialect.CPP},
	{"elif", token.PPElse, dialect.AllC | dialect.PP},
	{"else", token.Else, dialect.All},
	{"else", token.PPElse, dialect.All | dialect.PP},
	{"elseif", token.PPElse, dialect.Pawn | dialect.PP},
	{"emit", token.PPEmit, dialect.Pawn | dialect.PP},
	{"endif", token.PPEndif, dialect.All | dialect.PP},
	{"endinput", token.PPEndInput, dialect.Pawn | dialect.PP},
	{"endregion", token.PPEndRegion, dialect.All | dialect.PP},
	{"endscript", token.PPEndInput, dialect.Pawn | dialect.PP},
	{"enum", token.Enum, dialect.All},
	{"error", token.PPError, dialect.Pawn | dialect.PP},
	{"errordomain", token.Enum, dialect.Vala},
	{"event", token.Type, dialect.CS},
	{"exit", token.Function, dialect.Pawn},
	{"explicit", token.Qualifier, dialect.CPP | dialect.CS},
	{"export", token.Export, dialect.CPP | dialect.D | dialect.ECMA},
	{"extends", token.Qualifier, dialect.Java | dialect.ECMA},
	{"extern", token.Extern, dialect.C | dialect.CPP | dialect.OC | dialect.CS | dialect.D | dialect.Vala},
	{"false", token.Word, dialect.All},
	{"file", token.PPFile, dialect.Pawn | dialect.PP},
	{"final", token.Qualifier, dialect.CPP | dialect.D | dialect.ECMA},
	{"finally", token.Finally, dialect.D | dialect.CS | dialect.Vala | dialect.ECMA | dialect.Java},
	{"fixed", token.Fixed, dialect.CS},
	{"flags", token.Type, dialect.Vala},
	{"float", token.Type, dialect.AllC},
	{"for", token.For, dialect.All},
	{"foreach", token.For, dialect.CS | dialect.D | dialect.Vala},
	{"foreach_reverse", token.For, dialect.D},
	{"forward", token.Forward, dialect.Pawn},
	{"friend", token.Friend, dialect.CPP},
	{"function", token.Function, dialect.D | dialect.ECMA},
	{"get", token.GetSet, dialect.CS | dialect.Vala},
	{"goto", token.Goto, dialect.All},
	{"idouble", token.Type, dialect.D},
	{"if", token.If, dialect.All},
	{"if", token.PPIf, dialect.All | dialect.PP},
	{"ifdef", token.PPIf, dialect.AllC | dialect.PP},
	{"ifloat", token.Type, dialect.D},
	{"ifndef", token.PPIf, dialect.AllC | dialect.PP},
	{"implements", token.Qualifier, dialect.Java | dialect.ECMA},
	{"implicit", token.Qualifier, dialect.CS},
	{"import", token.Import, dialect.D | dialect.Java | dialect.ECMA},
	{"import", token.PPInclude, dialect.OC | dialect.PP},
	{"in", token.In, dialect.D | dialect.CS | dialect.Vala | dialect.ECMA | dialect.OC},
	{"include", token.PPInclude, dialect.C | dialect.CPP | dialect.OC | dialect.Pawn | dialect.PP},
	{"inline", token.Qualifier, dialect.C | dialect.CPP},
	{"inout", token.Qualifier, dialect.D},
	{"instanceof", token.Sizeof, dialect.Java | dialect.ECMA},
	{"int", token.Type, dialect.AllC},
	{"interface", token.Class, dialect.CPP | dialect.CS | dialect.D | dialect.Java | dialect.Vala | dialect.ECMA},
	{"internal", token.Qualifier, dialect.CS | dialect.Vala},
	{"invariant", token.Invariant, dialect.D},
	{"ireal", token.Type, dialect.D},
	{"is", token.SCompare, dialect.D | dialect.CS | dialect.Vala},
	{"lazy", token.Lazy, dialect.D},
	{"line", token.PPLine, dialect.Pawn | dialect.PP},
	{"lock", token.Lock, dialect.CS | dialect.Vala},
	{"long", token.Type, dialect.AllC},
	{"macro", token.DMacro, dialect.D},
	{"mixin", token.Class, dialect.D},
	{"module", token.DModule, dialect.D},
	{"mutable", token.Qualifier, dialect.CPP},
	{"namespace", token.Namespace, dialect.CPP | dialect.CS | dialect.Vala},
	{"native", token.Native, dialect.Pawn},
	{"native", token.Qualifier, dialect.Java | dialect.ECMA},
	{"new", token.New, dialect.CPP | dialect.CS | dialect.D | dialect.Java | dialect.Pawn | dialect.Vala | dialect.ECMA},
	{"noexcept", token.Noexcept, dialect.CPP},
	{"nonnull", token.Type, dialect.OC},
	{"not", token.SArith, dialect.CPP},
	{"not_eq", token.SCompare, dialect.CPP},
	{"null_resettable", token.OCPropertyAttr, dialect.OC},
	{"null_unspecified", token.Type, dialect.OC},
	{"nullable", token.Type, dialect.OC},
	{"object", token.Type, dialect.CS},
	{"operator", token.Operator, dialect.CPP | dialect.CS | dialect.Pawn},
	{"or", token.SBool, dialect.CPP},
	{"or_eq", token.SAssign, dialect.CPP},
	{"out", token.Qualifier, dialect.CS | dialect.D | dialect.Vala},
	{"override", token.Qualifier, dialect.CPP | dialect.CS | dialect.D | dialect.Vala},
	{"package", token.Access, dialect.D},
	{"package", token.Package, dialect.ECMA | dialect.Java},
	{"params", token.Type, dialect.CS | dialect.Vala},
	{"pragma", token.PPPragma, dialect.All | dialect.PP},
	{"private", token.Access, dialect.AllC},
	{"property", token.PPProperty, dialect.CS | dialect.PP},
	{"protected", token.Access, dialect.AllC},
	{"public", token.Access, dialect.All},
	{"readonly", token.Qualifier, dialect.CS},
	{"real", token.Type, dialect.D},
	{"ref", token.Qualifier, dialect.CS | dialect.Vala},
	{"region", token.PPRegion, dialect.All | dialect.PP},
	{"register", token.Qualifier, dialect.C | dialect.CPP},
	{"reinterpret_cast", token.TypeCast, dialect.CPP},
	{"remove", token.GetSet, dialect.CS},
	{"restrict", token.Qualifier, dialect.C | dialect.CPP},
	{"return", token.Return, dialect.All},
	{"sbyte", token.Type, dialect.CS},
	{"scope", token.DScope, dialect.D},
	{"sealed", token.Qualifier, dialect.CS},
	{"section", token.PPSection, dialect.Pawn | dialect.PP},
	{"self", token.This, dialect.OC},
	{"set", token.GetSet, dialect.CS | dialect.Vala},
	{"short", token.Type, dialect.AllC},
	{"signal", token.Access, dialect.Vala},
	{"signals", token.Access, dialect.CPP},
	{"signed", token.Type, dialect.C | dialect.CPP},
	{"size_t", token.Type, dialect.AllC},
	{"sizeof", token.Sizeof, dialect.C | dialect.CPP | dialect.CS | dialect.Vala | dialect.Pawn},
	{"sleep", token.Sizeof, dialect.Pawn},
	{"stackalloc", token.New, dialect.CS},
	{"state", token.State, dialect.Pawn},
	{"static", token.Qualifier, dialect.All},
	{"static_cast", token.TypeCast, dialect.CPP},
	{"stock", token.Stock, dialect.Pawn},
	{"strictfp", token.Qualifier, dialect.Java},
	{"string", token.Type, dialect.CS | dialect.Vala},
	{"struct", token.Struct, dialect.C | dialect.CPP | dialect.OC | dialect.CS | dialect.D | dialect.Vala},
	{"super", token.Super, dialect.D | dialect.Java | dialect.ECMA},
	{"switch", token.Switch, dialect.All},
	{"synchronized", token.Qualifier, dialect.D | dialect.ECMA},
	{"synchronized", token.Synchronized, dialect.Java},
	{"tagof", token.Tagof, dialect.Pawn},
	{"template", token.Template, dialect.CPP | dialect.D},
	{"this", token.This, dialect.CPP | dialect.CS | dialect.D | dialect.Java | dialect.Vala | dialect.ECMA},
	{"throw", token.Throw, dialect.CPP | dialect.CS | dialect.Vala | dialect.D | dialect.Java | dialect.ECMA},
	{"throws", token.Qualifier, dialect.Java | dialect.ECMA | dialect.Vala},
	{"transient", token.Qualifier, dialect.Java | dialect.ECMA},
	{"true", token.Word, dialect.All},
	{"try", token.Try, dialect.CPP | dialect.CS | dialect.D | dialect.Java | dialect.ECMA | dialect.Vala},
	{"tryinclude", token.PPInclude, dialect.Pawn | dialect.PP},
	{"typedef", token.Typedef, dialect.C | dialect.CPP | dialect.OC | dialect.D},
	{"typeid", token.Sizeof, dialect.CPP | dialect.D},
	{"typename", token.Typename, dialect.CPP},
	{"typeof", token.Decltype, dialect.C | dialect.CPP},
	{"typeof", token.Sizeof, dialect.CS | dialect.D | dialect.Vala | dialect.ECMA},
	{"ubyte", token.Type, dialect.D},
	{"ucent", token.Type, dialect.D},
	{"uint", token.Type, dialect.CS | dialect.Vala | dialect.D},
	{"ulong", token.Type, dialect.CS | dialect.Vala | dialect.D},
	{"unchecked", token.Qualifier, dialect.CS},
	{"undef", token.PPUndef, dialect.All | dialect.PP},
	{"union", token.Union, dialect.C | dialect.CPP | dialect.D},
	{"unittest", token.Unittest, dialect.D},
	{"unsafe", token.Unsafe, dialect.CS},
	{"unsafe_unretained", token.Qualifier, dialect.OC},
	{"unsigned", token.Type, dialect.C | dialect.CPP},
	{"ushort", token.Type, dialect.CS | dialect.Vala | dialect.D},
	{"using", token.Using, dialect.CPP | dialect.CS | dialect.Vala},
	{"var", token.Type, dialect.CS | dialect.Vala | dialect.ECMA},
	{"version", token.DVersion, dialect.D},
	{"virtual", token.Qualifier, dialect.CPP | dialect.CS | dialect.Vala},
	{"void", token.Type, dialect.AllC},
	{"volatile", token.Qualifier, dialect.C | dialect.CPP | dialect.CS | dialect.Java | dialect.ECMA},
	{"volatile", token.Volatile, dialect.D},
	{"wchar", token.Type, dialect.D},
	{"wchar_t", token.Type, dialect.C | dialect.CPP},
	{"weak", token.Qualifier, dialect.Vala},
	{"when", token.When, dialect.CS},
	{"where", token.Where, dialect.CS},
	{"while", token.While, dialect.All},
	{"with", token.DWith, dialect.D | dialect.ECMA},
	{"xor", token.SArith, dialect.CPP},
	{"xor_eq", token.SAssign, dialect.CPP},
}
