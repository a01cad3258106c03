package dice

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Expression is a parsed dice expression ready to be evaluated.
//
// Invariant after a successful Parse: Count >= 1, Sides >= 2, and
// 0 < KeepHighest < Count when KeepHighest is set.
type Expression struct {
	Raw         string // original input string
	Count       int    // number of dice
	Sides       int    // faces per die
	Modifier    int    // flat modifier (may be negative)
	KeepHighest int    // if > 0, keep only the N highest dice (e.g. 4d6kh3)
}

// exprPattern matches "d20", "2d6", "2d6+3", "4d8-2", "4d6kh3", "4d6kh3+1".
var exprPattern = regexp.MustCompile(`^(\d*)d(\d+)(?:kh(\d+))?([+-]\d+)?$`)

// Parse parses a dice expression string into an Expression.
//
// Supported forms: "d20", "2d6", "2d6+3", "4d8-2", "4d6kh3".
// Postcondition: returns a valid Expression or a descriptive error.
func Parse(expr string) (Expression, error) {
	if expr == "" {
		return Expression{}, fmt.Errorf("dice: empty expression")
	}

	m := exprPattern.FindStringSubmatch(strings.ToLower(expr))
	if m == nil {
		return Expression{}, fmt.Errorf("dice: malformed expression %q", expr)
	}

	count := 1
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q", expr)
		}
		count = n
	}

	sides, err := strconv.Atoi(m[2])
	if err != nil || sides < 2 {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: must be >= 2", expr)
	}

	keepHighest := 0
	if m[3] != "" {
		kh, err := strconv.Atoi(m[3])
		if err != nil || kh <= 0 || kh >= count {
			return Expression{}, fmt.Errorf("dice: kh value in %q must be > 0 and < count %d", expr, count)
		}
		keepHighest = kh
	}

	modifier := 0
	if m[4] != "" {
		modifier, err = strconv.Atoi(m[4])
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid modifier in %q: %w", expr, err)
		}
	}

	return Expression{
		Raw:         expr,
		Count:       count,
		Sides:       sides,
		Modifier:    modifier,
		KeepHighest: keepHighest,
	}, nil
}

// MustParse parses expr and panics on error. Useful for package-level
// constants.
func MustParse(expr string) Expression {
	e, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for expression " + expr + ": " + err.Error())
	}
	return e
}

// Eval rolls expr using r and returns a RollResult. Each die starts on its
// minimum face and is rotated by an amount drawn from r, so a NopRoller
// yields all 1s and an RngRoller yields uniform faces.
//
// Precondition: expr must come from Parse; r must be non-nil.
// Postcondition: len(result.Dice) == expr.Count (or expr.KeepHighest when
// set) and result.Total() == sum(result.Dice) + result.Modifier.
func Eval(expr Expression, r Roller) (RollResult, error) {
	die, err := NewNumericDie(expr.Sides)
	if err != nil {
		return RollResult{}, err
	}

	rolled := make([]int, expr.Count)
	for i := range rolled {
		rolled[i] = Roll(r, die).Value()
	}

	kept := rolled
	if expr.KeepHighest > 0 {
		sorted := make([]int, len(rolled))
		copy(sorted, rolled)
		sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
		kept = sorted[:expr.KeepHighest]
	}

	return RollResult{
		Expression: expr.Raw,
		Dice:       kept,
		Modifier:   expr.Modifier,
	}, nil
}

// RollExpr parses expr and evaluates it with r in a single call.
//
// Postcondition: returns a RollResult or a parse/eval error.
func RollExpr(expr string, r Roller) (RollResult, error) {
	e, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return Eval(e, r)
}
