// Package slug turns arbitrary text into URL-safe identifiers.
//
//	slug.Make("Hello, World!")                  // "hello-world"
//	slug.Make("Hello World", slug.Separator("_")) // "hello_world"
//
// Output only contains lowercase ASCII letters, digits and the separator.
package slug
