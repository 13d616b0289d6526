package repository

import (
	"fmt"
	"strings"
)

// rowScanner 讓 pgx.Row 與 pgx.Rows 共用 scan 函式
type rowScanner interface {
	Scan(dest ...any) error
}

// whereBuilder 依序累積查詢條件與參數，產生 $n 佔位符
type whereBuilder struct {
	conds []string
	args  []interface{}
}

func (w *whereBuilder) add(format string, arg interface{}) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(format, len(w.args)))
}

func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.conds, " AND ")
}
