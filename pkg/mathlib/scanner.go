// Copyright 2024 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mathlib

import "strings"

// scanMode selects the grammar the integer scanner applies after the sign.
type scanMode uint8

const (
	// modeScientific: digits, optional e/E, optional '+', exponent digits.
	// Selected only when the token contains an uppercase 'E'.
	modeScientific scanMode = iota
	modeHex
	modeOctal
	// modeDefault: decimal digits with an optional u/l suffix run.
	modeDefault
)

func (m scanMode) String() string {
	switch m {
	case modeScientific:
		return "scientific"
	case modeHex:
		return "hex"
	case modeOctal:
		return "octal"
	}
	return "default"
}

// selectMode picks the mode by priority scientific > hex > octal > default.
func selectMode(tok string) scanMode {
	switch {
	case strings.Contains(tok, "E"):
		return modeScientific
	case IsHex(tok):
		return modeHex
	case IsOct(tok):
		return modeOctal
	}
	return modeDefault
}

type scanState uint8

const (
	stateLeadingSpace scanState = iota
	stateSign
	stateMantissa
	stateExponentMark
	stateExponentSign
	stateExponentDigits
	stateRadixPrefix
	stateHexDigits
	stateOctalDigits
	stateDecimalDigits
	stateSuffix
	stateTrailingSpace
	stateAccept
	stateReject
)

var stateNames = [...]string{
	stateLeadingSpace:   "leading-space",
	stateSign:           "sign",
	stateMantissa:       "mantissa",
	stateExponentMark:   "exponent-mark",
	stateExponentSign:   "exponent-sign",
	stateExponentDigits: "exponent-digits",
	stateRadixPrefix:    "radix-prefix",
	stateHexDigits:      "hex-digits",
	stateOctalDigits:    "octal-digits",
	stateDecimalDigits:  "decimal-digits",
	stateSuffix:         "suffix",
	stateTrailingSpace:  "trailing-space",
	stateAccept:         "accept",
	stateReject:         "reject",
}

func (s scanState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "invalid"
}

func (s scanState) terminal() bool {
	return s == stateAccept || s == stateReject
}

// intScanner decides whether a token is an integer literal. Each state
// consumes its part of the grammar and returns the next state.
type intScanner struct {
	tok    string
	pos    int
	mode   scanMode
	digits int
}

// transitions is indexed by the non-terminal states.
var transitions = [...]func(*intScanner) scanState{
	stateLeadingSpace:   (*intScanner).leadingSpace,
	stateSign:           (*intScanner).sign,
	stateMantissa:       (*intScanner).mantissa,
	stateExponentMark:   (*intScanner).exponentMark,
	stateExponentSign:   (*intScanner).exponentSign,
	stateExponentDigits: (*intScanner).exponentDigits,
	stateRadixPrefix:    (*intScanner).radixPrefix,
	stateHexDigits:      (*intScanner).hexDigits,
	stateOctalDigits:    (*intScanner).octalDigits,
	stateDecimalDigits:  (*intScanner).decimalDigits,
	stateSuffix:         (*intScanner).suffix,
	stateTrailingSpace:  (*intScanner).trailingSpace,
}

func newIntScanner(tok string) *intScanner {
	return &intScanner{tok: tok, mode: selectMode(tok)}
}

// step runs a single transition. Terminal states are returned unchanged.
func (sc *intScanner) step(s scanState) scanState {
	if s.terminal() {
		return s
	}
	return transitions[s](sc)
}

func (sc *intScanner) run() bool {
	s := stateLeadingSpace
	for !s.terminal() {
		s = sc.step(s)
	}
	return s == stateAccept
}

func (sc *intScanner) cur() byte {
	return at(sc.tok, sc.pos)
}

func (sc *intScanner) skip(pred func(byte) bool) int {
	n := 0
	for sc.pos < len(sc.tok) && pred(sc.tok[sc.pos]) {
		sc.pos++
		n++
	}
	return n
}

func (sc *intScanner) leadingSpace() scanState {
	sc.skip(isSpace)
	return stateSign
}

func (sc *intScanner) sign() scanState {
	if isSign(sc.cur()) {
		sc.pos++
	}
	switch sc.mode {
	case modeScientific:
		return stateMantissa
	case modeHex, modeOctal:
		return stateRadixPrefix
	}
	return stateDecimalDigits
}

func (sc *intScanner) mantissa() scanState {
	sc.skip(isDigit)
	return stateExponentMark
}

func (sc *intScanner) exponentMark() scanState {
	if lower(sc.cur()) != 'e' {
		return stateTrailingSpace
	}
	sc.pos++
	return stateExponentSign
}

func (sc *intScanner) exponentSign() scanState {
	switch sc.cur() {
	case '+':
		sc.pos++
	case '-':
		// 124E-2 is floating
		return stateReject
	}
	return stateExponentDigits
}

func (sc *intScanner) exponentDigits() scanState {
	sc.skip(isDigit)
	return stateTrailingSpace
}

func (sc *intScanner) radixPrefix() scanState {
	if sc.mode == modeHex {
		sc.pos += 2
		return stateHexDigits
	}
	sc.pos++
	return stateOctalDigits
}

func (sc *intScanner) hexDigits() scanState {
	sc.digits += sc.skip(isHexDigit)
	return stateSuffix
}

func (sc *intScanner) octalDigits() scanState {
	sc.digits += sc.skip(IsOctalDigit)
	return stateSuffix
}

func (sc *intScanner) decimalDigits() scanState {
	sc.digits += sc.skip(isDigit)
	return stateSuffix
}

// suffix consumes unsigned/long markers in any case and order.
func (sc *intScanner) suffix() scanState {
	sc.skip(func(c byte) bool {
		c = lower(c)
		return c == 'u' || c == 'l'
	})
	if sc.mode == modeDefault && sc.digits == 0 {
		return stateReject
	}
	return stateTrailingSpace
}

func (sc *intScanner) trailingSpace() scanState {
	sc.skip(isSpace)
	if sc.pos >= len(sc.tok) {
		return stateAccept
	}
	return stateReject
}
