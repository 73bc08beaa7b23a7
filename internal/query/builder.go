// Package query builds parameterized PostgreSQL statements.
//
// Predicates are appended together with their bound values. A predicate
// marks each value position with "?"; Build renders the markers as $1..$n
// in append order and inserts the WHERE, AND and HAVING keywords itself,
// so callers never count placeholders by hand.
//
// Only fixed SQL text (keywords, column names, operators) belongs in a
// predicate. User-supplied values always travel as arguments.
package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrArgCount is returned by Build when a predicate's "?" markers do not
// match the number of arguments given with it.
var ErrArgCount = errors.New("query: placeholder count does not match argument count")

type clause struct {
	predicate string
	args      []any
}

// Builder accumulates the optional parts of a SELECT statement.
// The zero value is not usable; call New.
type Builder struct {
	base     string
	where    []clause
	groupBy  []string
	having   []clause
	orderBy  []string
	limit    int
	hasLimit bool
}

// New starts a statement from a fixed base, typically SELECT ... FROM ... JOIN ....
func New(base string) *Builder {
	return &Builder{base: strings.TrimSpace(base)}
}

// Where adds a predicate to the WHERE clause. Predicates are joined with AND.
func (b *Builder) Where(predicate string, args ...any) *Builder {
	b.where = append(b.where, clause{predicate: predicate, args: args})
	return b
}

func (b *Builder) GroupBy(cols ...string) *Builder {
	b.groupBy = append(b.groupBy, cols...)
	return b
}

// Having adds a predicate to the HAVING clause. Predicates are joined with AND.
func (b *Builder) Having(predicate string, args ...any) *Builder {
	b.having = append(b.having, clause{predicate: predicate, args: args})
	return b
}

func (b *Builder) OrderBy(terms ...string) *Builder {
	b.orderBy = append(b.orderBy, terms...)
	return b
}

// Limit caps the result set. The value is bound as the last argument.
func (b *Builder) Limit(n int) *Builder {
	b.limit = n
	b.hasLimit = true
	return b
}

// Build renders the statement and returns it with its arguments in placeholder order.
func (b *Builder) Build() (string, []any, error) {
	var sb strings.Builder
	var args []any

	sb.WriteString(b.base)

	if err := writeClauses(&sb, &args, " WHERE ", b.where); err != nil {
		return "", nil, err
	}

	if len(b.groupBy) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(b.groupBy, ", "))
	}

	if err := writeClauses(&sb, &args, " HAVING ", b.having); err != nil {
		return "", nil, err
	}

	if len(b.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(b.orderBy, ", "))
	}

	if b.hasLimit {
		args = append(args, b.limit)
		sb.WriteString(" LIMIT ")
		sb.WriteString(placeholder(len(args)))
	}

	return sb.String(), args, nil
}

func writeClauses(sb *strings.Builder, args *[]any, keyword string, clauses []clause) error {
	for i, c := range clauses {
		if strings.Count(c.predicate, "?") != len(c.args) {
			return fmt.Errorf("%w: %q has %d argument(s)", ErrArgCount, c.predicate, len(c.args))
		}

		if i == 0 {
			sb.WriteString(keyword)
		} else {
			sb.WriteString(" AND ")
		}

		next := 0
		for _, r := range c.predicate {
			if r != '?' {
				sb.WriteRune(r)
				continue
			}
			*args = append(*args, c.args[next])
			next++
			sb.WriteString(placeholder(len(*args)))
		}
	}
	return nil
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Contains turns s into a LIKE/ILIKE pattern that matches s as a literal substring.
func Contains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
