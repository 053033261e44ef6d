// Package async runs independent operations concurrently and collects their
// errors.
//
// [RunParallel] is used to resolve several named resources at once before an
// operation that needs all of them.
package async
