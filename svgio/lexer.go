// File: lexer.go
// Role: tokenizes an SVG path `d` string into commands and their numeric
// operands. Grounded on the scan-then-strconv.ParseFloat style used by the
// retrieved pack's own SVG path readers (geometry.go's flattening helpers
// and the oksvg-derived ReadFloat state machine).
package svgio

import (
	"strconv"
	"strings"
)

// token is one command letter plus its raw operand numbers.
type token struct {
	cmd  byte // one of M m L l C c Z z
	nums []float64
}

var supportedCmds = "MmLlCcZz"

// tokenize splits d into a sequence of (command, numbers) tokens. Unknown
// command letters produce ErrParse. Numbers are read with strconv, so
// malformed numeric text also produces ErrParse.
func tokenize(d string) ([]token, error) {
	var toks []token
	i := 0
	n := len(d)

	for i < n {
		c := d[i]
		if isSpaceOrComma(c) {
			i++

			continue
		}
		if strings.IndexByte(supportedCmds, c) < 0 {
			return nil, ErrParse
		}
		cmd := c
		i++

		var nums []float64
		for {
			start := i
			for start < n && isSpaceOrComma(d[start]) {
				start++
			}
			end := scanNumber(d, start)
			if end == start {
				break
			}
			v, err := strconv.ParseFloat(d[start:end], 64)
			if err != nil {
				return nil, ErrParse
			}
			nums = append(nums, v)
			i = end
		}

		toks = append(toks, token{cmd: cmd, nums: nums})
	}

	return toks, nil
}

func isSpaceOrComma(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ','
}

// scanNumber returns the end index of the number starting at start (a
// run of [+-]?digits[.digits] with no exponent support, matching the
// subset of SVG path numeric syntax this engine needs).
func scanNumber(d string, start int) int {
	i := start
	n := len(d)
	if i < n && (d[i] == '+' || d[i] == '-') {
		i++
	}
	digitsBefore := i
	for i < n && d[i] >= '0' && d[i] <= '9' {
		i++
	}
	hasIntPart := i > digitsBefore
	hasFrac := false
	if i < n && d[i] == '.' {
		j := i + 1
		for j < n && d[j] >= '0' && d[j] <= '9' {
			j++
		}
		if j > i+1 {
			hasFrac = true
			i = j
		}
	}
	if !hasIntPart && !hasFrac {
		return start
	}

	return i
}
