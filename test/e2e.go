package test

// Regression is an expression with the value every mode must produce.
type Regression struct {
	Expr     string
	Expected float64
}

// Regressions were collected from the first command line version of the
// calculator. None of them divide unevenly so decimal and integer mode
// agree on all of them.
var Regressions = []Regression{
	{"2+3*4-1", 13},
	{"20/4+3*2", 11},
	{"100-50/2+10", 85},
	{"-10+5*-2", -20},
	{"3*4+2*5-6/2", 19},
	{"48/6/2", 4},
	{"2*3*4", 24},
	{"1000000/8", 125000},
	{"-7*-3+1", 22},
	{"5+3*0", 5},
	{"50-25/5*2+8", 48},
	{"-15*-4/6+7*2", 24},
	{"200/8/5+3*4-2", 15},
}
