package ast

// Visitor has one Visit method per concrete AST node; each node's Accept
// calls its own Visit method directly, so dispatch needs no type switch.
type Visitor interface {
	VisitProgram(*Program)
	VisitClassDef(*ClassDef)
	VisitFunctionDef(*FunctionDef)

	VisitBlock(*Block)
	VisitExprStmt(*ExprStmt)
	VisitVarDecl(*VarDecl)
	VisitIf(*If)
	VisitWhile(*While)
	VisitReturn(*Return)

	VisitIntLit(*IntLit)
	VisitBoolLit(*BoolLit)
	VisitCharLit(*CharLit)
	VisitStringLit(*StringLit)
	VisitVar(*Var)
	VisitAssign(*Assign)
	VisitFieldAssign(*FieldAssign)
	VisitUnary(*Unary)
	VisitBinary(*Binary)
	VisitCall(*Call)
	VisitConstruct(*Construct)
	VisitMemberAccess(*MemberAccess)
	VisitMethodCall(*MethodCall)
}
