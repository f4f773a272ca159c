package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// stmt accumulates SQL text and its positional arguments. Placeholders are
// numbered $1..$n in the order arguments are bound.
type stmt struct {
	sql  strings.Builder
	args []any
}

func (s *stmt) raw(text string) {
	s.sql.WriteString(text)
}

func (s *stmt) bind(value any) {
	s.args = append(s.args, value)
	s.sql.WriteString("$" + strconv.Itoa(len(s.args)))
}

// bindExpr copies expr verbatim, replacing each '?' with the next numbered
// placeholder bound to the matching value. Extra '?' are left as-is.
func (s *stmt) bindExpr(expr string, values []any) {
	if len(values) == 0 {
		s.raw(expr)
		return
	}

	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && next < len(values) {
			s.bind(values[next])
			next++
			continue
		}
		s.sql.WriteByte(expr[i])
	}
}

func (s *stmt) where(conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	s.raw(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			s.raw(" AND ")
		}
		c.render(s)
	}
}

type Condition interface {
	render(s *stmt)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) render(s *stmt) {
	s.raw(c.column)
	s.raw(" = ")
	s.bind(c.value)
}

type inCondition struct {
	column string
	values []any
}

func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

func (c inCondition) render(s *stmt) {
	if len(c.values) == 0 {
		s.raw("1=0")
		return
	}

	s.raw(c.column)
	s.raw(" IN (")
	for i, v := range c.values {
		if i > 0 {
			s.raw(", ")
		}
		s.bind(v)
	}
	s.raw(")")
}

type isNullCondition struct {
	column string
}

func IsNull(column string) Condition {
	return isNullCondition{column: column}
}

func (c isNullCondition) render(s *stmt) {
	s.raw(c.column)
	s.raw(" IS NULL")
}

type exprCondition struct {
	expr string
	args []any
}

func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) render(s *stmt) {
	s.bindExpr(c.expr, c.args)
}

type eqLiteralCondition struct {
	column string
	value  string
}

func EqLiteral(column, value string) Condition {
	return eqLiteralCondition{column: column, value: value}
}

func (c eqLiteralCondition) render(s *stmt) {
	s.raw(c.column)
	s.raw(" = '")
	s.raw(strings.ReplaceAll(c.value, "'", "''"))
	s.raw("'")
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	groupBy []string
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) GroupBy(parts ...string) *SelectBuilder {
	b.groupBy = append(b.groupBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	var s stmt
	s.raw("SELECT ")
	s.raw(strings.Join(b.columns, ", "))
	s.raw(" FROM ")
	s.raw(b.table)
	s.where(b.where)
	if len(b.groupBy) > 0 {
		s.raw(" GROUP BY ")
		s.raw(strings.Join(b.groupBy, ", "))
	}
	if len(b.orderBy) > 0 {
		s.raw(" ORDER BY ")
		s.raw(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		s.raw(" LIMIT ")
		s.raw(strconv.Itoa(b.limit))
	}

	return s.sql.String(), s.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	var s stmt
	s.raw("INSERT INTO ")
	s.raw(b.table)
	s.raw(" (")
	s.raw(strings.Join(b.columns, ", "))
	s.raw(") VALUES ")

	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			s.raw(", ")
		}
		s.raw("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				s.raw(", ")
			}
			s.bind(value)
		}
		s.raw(")")
	}

	if b.suffix != "" {
		s.raw(" ")
		s.raw(b.suffix)
	}

	return s.sql.String(), s.args, nil
}

type setClause struct {
	column string
	value  any
	expr   string
	args   []any
	isExpr bool
}

type UpdateBuilder struct {
	table  string
	sets   []setClause
	where  []Condition
	suffix string
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, value: value})
	return b
}

func (b *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, expr: expr, args: args, isExpr: true})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) Suffix(sql string) *UpdateBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	var s stmt
	s.raw("UPDATE ")
	s.raw(b.table)
	s.raw(" SET ")

	for i, set := range b.sets {
		if i > 0 {
			s.raw(", ")
		}
		s.raw(set.column)
		s.raw(" = ")
		if set.isExpr {
			s.bindExpr(set.expr, set.args)
			continue
		}
		s.bind(set.value)
	}

	s.where(b.where)
	if b.suffix != "" {
		s.raw(" ")
		s.raw(b.suffix)
	}

	return s.sql.String(), s.args, nil
}
