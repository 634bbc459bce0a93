// Package transform provides string normalizers for decoded payload values.
// They walk strings, slices and maps recursively and always return a copy,
// leaving the input untouched:
//
//	clean := transform.Multi(transform.TrimSpace, transform.ToLower)(value)
package transform
