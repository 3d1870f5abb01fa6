// Package domain defines the error vocabulary every layer speaks: the
// sentinels matched with errors.Is and the per-field ValidationError.
// Normalized resource state and its reducers live in domain/resource.
package domain
