package main

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const doc = `notifycheck checks how event notifications are sent

This analyzer reports:
1. Calls to EventManager.Notify whose error result is discarded
2. Usage of panic() function
3. Calls to log.Fatal() or os.Exit() outside main function of main package`

var Analyzer = &analysis.Analyzer{
	Name:     "notifycheck",
	Doc:      doc,
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

const (
	managerTypeName = "EventManager"
	notifyMethod    = "Notify"
)

func run(pass *analysis.Pass) (interface{}, error) {
	inspector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.ExprStmt)(nil),
		(*ast.GoStmt)(nil),
		(*ast.DeferStmt)(nil),
		(*ast.CallExpr)(nil),
	}

	inspector.Preorder(nodeFilter, func(node ast.Node) {
		switch n := node.(type) {
		case *ast.ExprStmt:
			if call, ok := n.X.(*ast.CallExpr); ok {
				reportDiscardedNotify(pass, call)
			}
		case *ast.GoStmt:
			reportDiscardedNotify(pass, n.Call)
		case *ast.DeferStmt:
			reportDiscardedNotify(pass, n.Call)
		case *ast.CallExpr:
			reportForbiddenCall(pass, n)
		}
	})

	return nil, nil
}

// reportDiscardedNotify сообщает о вызове Notify, результат которого отброшен:
// ошибка наблюдателя в таком случае теряется.
func reportDiscardedNotify(pass *analysis.Pass, call *ast.CallExpr) {
	selExpr, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || selExpr.Sel.Name != notifyMethod {
		return
	}

	selection, ok := pass.TypesInfo.Selections[selExpr]
	if !ok || selection.Kind() != types.MethodVal {
		return
	}

	if !isEventManager(selection.Recv()) {
		return
	}

	pass.Reportf(call.Pos(), "error returned by %s.%s is not checked", managerTypeName, notifyMethod)
}

func isEventManager(t types.Type) bool {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}
	named, ok := t.(*types.Named)
	return ok && named.Obj().Name() == managerTypeName
}

func reportForbiddenCall(pass *analysis.Pass, callExpr *ast.CallExpr) {
	// Проверка panic()
	if ident, ok := callExpr.Fun.(*ast.Ident); ok && ident.Name == "panic" {
		if _, builtin := pass.TypesInfo.Uses[ident].(*types.Builtin); builtin {
			pass.Reportf(callExpr.Pos(), "panic() should not be used, return an error instead")
		}
		return
	}

	selExpr, ok := callExpr.Fun.(*ast.SelectorExpr)
	if !ok {
		return
	}
	xIdent, ok := selExpr.X.(*ast.Ident)
	if !ok {
		return
	}
	pkgName, ok := pass.TypesInfo.Uses[xIdent].(*types.PkgName)
	if !ok {
		return
	}

	pkgPath := pkgName.Imported().Path()
	funcName := selExpr.Sel.Name

	switch {
	case pkgPath == "log" && strings.HasPrefix(funcName, "Fatal"):
		if !isInMainFunction(pass, callExpr) {
			pass.Reportf(callExpr.Pos(), "log.%s() should only be called from main function in main package", funcName)
		}
	case pkgPath == "os" && funcName == "Exit":
		if !isInMainFunction(pass, callExpr) {
			pass.Reportf(callExpr.Pos(), "os.Exit() should only be called from main function in main package")
		}
	}
}

func isInMainFunction(pass *analysis.Pass, node ast.Node) bool {
	if pass.Pkg.Name() != "main" {
		return false
	}

	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			if fn, ok := decl.(*ast.FuncDecl); ok && fn.Name.Name == "main" && fn.Recv == nil && fn.Body != nil {
				if node.Pos() >= fn.Body.Lbrace && node.Pos() <= fn.Body.Rbrace {
					return true
				}
			}
		}
	}
	return false
}
