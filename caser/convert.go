package caser

// ToCamelCase converts input to camelCase.
// Example: "first name" -> "firstName"
// Example: "user_id" -> "userId"
func ToCamelCase(input any) (string, error) {
	return ConventionCamel.Convert(input)
}

// ToPascalCase converts input to PascalCase.
// Example: "user_profile" -> "UserProfile"
// Example: "api-client" -> "ApiClient"
func ToPascalCase(input any) (string, error) {
	return ConventionPascal.Convert(input)
}

// ToSnakeCase converts input to snake_case.
// Example: "myVariableName" -> "my_variable_name"
// Example: "SCREEN---NAME" -> "screen_name"
func ToSnakeCase(input any) (string, error) {
	return ConventionSnake.Convert(input)
}

// ToKebabCase converts input to kebab-case.
// Example: "myVariableName" -> "my-variable-name"
// Example: "user_id" -> "user-id"
func ToKebabCase(input any) (string, error) {
	return ConventionKebab.Convert(input)
}

// ToDotCase converts input to dot.case.
// Example: "camelCaseText" -> "camel.case.text"
// Example: "user_id" -> "user.id"
func ToDotCase(input any) (string, error) {
	return ConventionDot.Convert(input)
}

// ToConstantCase converts input to CONSTANT_CASE.
// Example: "myVariableName" -> "MY_VARIABLE_NAME"
func ToConstantCase(input any) (string, error) {
	return ConventionConstant.Convert(input)
}

// ToTrainCase converts input to Train-Case.
// Example: "myVariableName" -> "My-Variable-Name"
func ToTrainCase(input any) (string, error) {
	return ConventionTrain.Convert(input)
}

// ToTitleCase converts input to Title Case.
// Example: "user_id" -> "User Id"
func ToTitleCase(input any) (string, error) {
	return ConventionTitle.Convert(input)
}
