package matchers_test

import (
	"fmt"

	"github.com/fapete/Catch2/matchers"
)

func ExampleAnd() {
	group := matchers.And(matchers.Equals(1), matchers.Equals(2)).And(matchers.Equals(3))

	fmt.Println(group.Match(1))
	fmt.Println(group.Describe())
	// Output:
	// false
	// ( equals 1 and equals 2 and equals 3 )
}

func ExampleOr() {
	group := matchers.Or(matchers.Equals(1), matchers.Equals(2))

	fmt.Println(group.Match(1))
	fmt.Println(group.Describe())
	// Output:
	// true
	// ( equals 1 or equals 2 )
}

func ExampleNot() {
	negated := matchers.Not(matchers.Equals(1))

	fmt.Println(negated.Match(2))
	fmt.Println(negated.Describe())
	// Output:
	// true
	// not equals 1
}

func ExampleNot_group() {
	negated := matchers.Not[string](matchers.And(
		matchers.StartsWith("He"),
		matchers.EndsWith("lo"),
	))

	fmt.Println(negated.Match("Hello"))
	fmt.Println(negated.Describe())
	// Output:
	// false
	// not ( starts with: "He" and ends with: "lo" )
}
