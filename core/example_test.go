package core_test

import (
	"fmt"

	"github.com/katalvlaran/qop/calc"
	"github.com/katalvlaran/qop/core"
	"github.com/katalvlaran/qop/spins"
)

func single(token string, c float64) *spins.DecoherenceOperator {
	d, err := spins.ParseDecoherenceProduct(token)
	if err != nil {
		panic(err)
	}
	op := spins.NewDecoherenceOperator()
	_ = op.Set(d, calc.NewComplex(c, 0))

	return op
}

// ExampleMul multiplies operators acting on different spins.
func ExampleMul() {
	fmt.Println(core.Mul(single("0Z", 2), single("1X", 0.5)))
	// Output:
	// DecoherenceOperator{
	// 0Z1X: (1e0 + i * 0e0),
	// }
}

// ExampleMul_sameSpin multiplies operators acting on the same spin: Z·X = iY.
func ExampleMul_sameSpin() {
	fmt.Println(core.Mul(single("0Z", 2), single("0X", 0.5)))
	// Output:
	// DecoherenceOperator{
	// 0iY: (1e0 + i * 0e0),
	// }
}

// ExampleOperator_Add shows that cancelling terms leave no entry behind.
func ExampleOperator_Add() {
	a := single("0X1Z", 1.5)
	sum := a.Add(a.Neg())
	fmt.Println(sum.Len(), sum)
	// Output:
	// 0 DecoherenceOperator{
	// }
}
