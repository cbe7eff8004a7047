// SPDX-License-Identifier: MIT
// Package: fakebackend/instruction
//
// gates.go — static table of gates the generator knows how to calibrate.

package instruction

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnsupportedGate indicates a basis gate missing from the gate table.
var ErrUnsupportedGate = errors.New("instruction: unsupported gate")

// Arity values.
const (
	OneQubit = 1
	TwoQubit = 2
)

// Spec describes one native gate.
type Spec struct {
	Name    string
	Arity   int
	Params  []string // parameter names in call order
	QASMDef string   // OpenQASM 2 definition
}

var table = map[string]Spec{
	"id":   {Name: "id", Arity: OneQubit, QASMDef: "gate id q { U(0,0,0) q; }"},
	"x":    {Name: "x", Arity: OneQubit, QASMDef: "gate x q { U(pi,0,pi) q; }"},
	"y":    {Name: "y", Arity: OneQubit, QASMDef: "gate y q { U(pi,pi/2,pi/2) q; }"},
	"z":    {Name: "z", Arity: OneQubit, QASMDef: "gate z q { U(0,0,pi) q; }"},
	"h":    {Name: "h", Arity: OneQubit, QASMDef: "gate h q { U(pi/2,0,pi) q; }"},
	"s":    {Name: "s", Arity: OneQubit, QASMDef: "gate s q { U(0,0,pi/2) q; }"},
	"sdg":  {Name: "sdg", Arity: OneQubit, QASMDef: "gate sdg q { U(0,0,-pi/2) q; }"},
	"t":    {Name: "t", Arity: OneQubit, QASMDef: "gate t q { U(0,0,pi/4) q; }"},
	"tdg":  {Name: "tdg", Arity: OneQubit, QASMDef: "gate tdg q { U(0,0,-pi/4) q; }"},
	"sx":   {Name: "sx", Arity: OneQubit, QASMDef: "gate sx q { sdg q; h q; sdg q; }"},
	"sxdg": {Name: "sxdg", Arity: OneQubit, QASMDef: "gate sxdg q { s q; h q; s q; }"},
	"rx":   {Name: "rx", Arity: OneQubit, Params: []string{"theta"}, QASMDef: "gate rx(theta) q { U(theta,-pi/2,pi/2) q; }"},
	"ry":   {Name: "ry", Arity: OneQubit, Params: []string{"theta"}, QASMDef: "gate ry(theta) q { U(theta,0,0) q; }"},
	"rz":   {Name: "rz", Arity: OneQubit, Params: []string{"phi"}, QASMDef: "gate rz(phi) q { U(0,0,phi) q; }"},
	"p":    {Name: "p", Arity: OneQubit, Params: []string{"lambda"}, QASMDef: "gate p(lambda) q { U(0,0,lambda) q; }"},
	"u1":   {Name: "u1", Arity: OneQubit, Params: []string{"lambda"}, QASMDef: "gate u1(lambda) q { U(0,0,lambda) q; }"},
	"u2":   {Name: "u2", Arity: OneQubit, Params: []string{"phi", "lambda"}, QASMDef: "gate u2(phi,lambda) q { U(pi/2,phi,lambda) q; }"},
	"u3":   {Name: "u3", Arity: OneQubit, Params: []string{"theta", "phi", "lambda"}, QASMDef: "gate u3(theta,phi,lambda) q { U(theta,phi,lambda) q; }"},

	"cx":    {Name: "cx", Arity: TwoQubit, QASMDef: "gate cx c,t { CX c,t; }"},
	"cy":    {Name: "cy", Arity: TwoQubit, QASMDef: "gate cy a,b { sdg b; cx a,b; s b; }"},
	"cz":    {Name: "cz", Arity: TwoQubit, QASMDef: "gate cz a,b { h b; cx a,b; h b; }"},
	"ch":    {Name: "ch", Arity: TwoQubit, QASMDef: "gate ch a,b { s b; h b; t b; cx a,b; tdg b; h b; sdg b; }"},
	"swap":  {Name: "swap", Arity: TwoQubit, QASMDef: "gate swap a,b { cx a,b; cx b,a; cx a,b; }"},
	"iswap": {Name: "iswap", Arity: TwoQubit, QASMDef: "gate iswap a,b { s a; s b; h a; cx a,b; cx b,a; h b; }"},
	"ecr":   {Name: "ecr", Arity: TwoQubit, QASMDef: "gate ecr a,b { rzx(pi/4) a,b; x a; rzx(-pi/4) a,b; }"},
	"cp":    {Name: "cp", Arity: TwoQubit, Params: []string{"lambda"}, QASMDef: "gate cp(lambda) a,b { p(lambda/2) a; cx a,b; p(-lambda/2) b; cx a,b; p(lambda/2) b; }"},
	"crz":   {Name: "crz", Arity: TwoQubit, Params: []string{"lambda"}, QASMDef: "gate crz(lambda) a,b { rz(lambda/2) b; cx a,b; rz(-lambda/2) b; cx a,b; }"},
	"rzx":   {Name: "rzx", Arity: TwoQubit, Params: []string{"theta"}, QASMDef: "gate rzx(theta) a,b { h b; cx a,b; rz(theta) b; cx a,b; h b; }"},
	"rxx":   {Name: "rxx", Arity: TwoQubit, Params: []string{"theta"}, QASMDef: "gate rxx(theta) a,b { h a; h b; cx a,b; rz(theta) b; cx a,b; h a; h b; }"},
	"ryy":   {Name: "ryy", Arity: TwoQubit, Params: []string{"theta"}, QASMDef: "gate ryy(theta) a,b { rx(pi/2) a; rx(pi/2) b; cx a,b; rz(theta) b; cx a,b; rx(-pi/2) a; rx(-pi/2) b; }"},
	"rzz":   {Name: "rzz", Arity: TwoQubit, Params: []string{"theta"}, QASMDef: "gate rzz(theta) a,b { cx a,b; rz(theta) b; cx a,b; }"},
}

// Lookup returns the Spec for gate, or ErrUnsupportedGate.
// The returned Params slice is a copy.
func Lookup(gate string) (Spec, error) {
	s, ok := table[gate]
	if !ok {
		return Spec{}, fmt.Errorf("Lookup: %q: %w", gate, ErrUnsupportedGate)
	}
	s.Params = append([]string(nil), s.Params...)

	return s, nil
}

// Arity returns 1 or 2 for a known gate, or ErrUnsupportedGate.
func Arity(gate string) (int, error) {
	s, ok := table[gate]
	if !ok {
		return 0, fmt.Errorf("Arity: %q: %w", gate, ErrUnsupportedGate)
	}

	return s.Arity, nil
}

// Supported lists every known gate name in ascending order.
func Supported() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
