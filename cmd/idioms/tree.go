package main

import (
	"fmt"

	"github.com/npillmayer/idioms/expr"
	"github.com/pterm/pterm"
)

// renderTree displays an expression tree on a terminal.
func renderTree(e expr.Expr) {
	root := pterm.NewTreeFromLeveledList(leveledExpr(e, pterm.LeveledList{}, 0))
	pterm.DefaultTree.WithRoot(root).Render()
}

// leveledExpr flattens an expression tree into a pterm leveled list, pre-order.
func leveledExpr(e expr.Expr, ll pterm.LeveledList, level int) pterm.LeveledList {
	switch x := e.(type) {
	case expr.Num:
		return append(ll, pterm.LeveledListItem{Level: level, Text: x.String()})
	case expr.Sum:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "+"})
		ll = leveledExpr(x.Left, ll, level+1)
		return leveledExpr(x.Right, ll, level+1)
	}
	return append(ll, pterm.LeveledListItem{Level: level, Text: fmt.Sprintf("?%v", e)})
}
