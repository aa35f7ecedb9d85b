package caser_test

import (
	"fmt"
	"log"
	"os"
	"text/template"

	"github.com/erraggy/casetools/caser"
)

// Example demonstrates the four primary conversions.
func Example() {
	camel, _ := caser.ToCamelCase("first name")
	snake, _ := caser.ToSnakeCase("myVariableName")
	kebab, _ := caser.ToKebabCase("user_id")
	dot, _ := caser.ToDotCase("camelCaseText")

	fmt.Println(camel)
	fmt.Println(snake)
	fmt.Println(kebab)
	fmt.Println(dot)
	// Output:
	// firstName
	// my_variable_name
	// user-id
	// camel.case.text
}

// ExampleToCamelCase shows validation of non-string input.
func ExampleToCamelCase() {
	if _, err := caser.ToCamelCase(123); err != nil {
		fmt.Println(err)
	}
	// Output:
	// Input must be a string (got int)
}

func ExampleNew() {
	snake, err := caser.New(caser.ConventionSnake)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(snake.ConvertString("XMLHttpRequest"))
	// Output:
	// xmlhttp_request
}

func ExampleDetect() {
	fmt.Println(caser.Detect("already-kebab-case"))
	fmt.Println(caser.Detect("SCREEN_NAME"))
	// Output:
	// kebab
	// constant
}

func ExampleTemplateFuncs() {
	tmpl := template.Must(
		template.New("field").Funcs(caser.TemplateFuncs()).Parse(`{{ snake .Name }}`),
	)
	if err := tmpl.Execute(os.Stdout, struct{ Name string }{"userProfile"}); err != nil {
		log.Fatal(err)
	}
	// Output:
	// user_profile
}
