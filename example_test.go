package functions_test

import (
	"fmt"
	"strings"

	functions "github.com/SobolSigizmund/gs-collections"
)

func ExampleChain() {
	parseTrimmed := functions.Chain(
		functions.TrimString(),
		functions.Must(functions.ParseInt()),
	)

	fmt.Println(parseTrimmed("  42  "))
	// Output: 42
}

func ExampleBind() {
	repeatTwice := functions.Bind(strings.Repeat, 2)

	fmt.Println(repeatTwice("ab"))
	// Output: abab
}

func ExampleCaseDefault() {
	grade := functions.CaseDefault(functions.Constant[int]("F")).
		AddCase(func(score int) bool { return score >= 90 }, functions.Constant[int]("A")).
		AddCase(func(score int) bool { return score >= 80 }, functions.Constant[int]("B")).
		Build()

	fmt.Println(grade(93), grade(85), grade(12))
	// Output: A B F
}

func ExampleFirstNonEmptyString() {
	type server struct {
		hostname string
		addr     string
	}

	display := functions.FirstNonEmptyString(
		func(s server) string { return s.hostname },
		func(s server) string { return s.addr },
		functions.Constant[server]("unknown"),
	)

	fmt.Println(display(server{addr: "10.1.2.3"}))
	// Output: 10.1.2.3
}

func ExampleWithDefault() {
	ports := map[string]int{"https": 443}

	port := functions.WithDefault(
		func(scheme string) int { return ports[scheme] },
		80,
	)

	fmt.Println(port("https"), port("gopher"))
	// Output: 443 80
}
