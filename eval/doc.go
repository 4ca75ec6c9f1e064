// Package eval selects and filters leaves of a bracket tree with
// [github.com/expr-lang/expr] predicates.
//
// A predicate is compiled once per call and run against every leaf
// with the variables described by [Env].  Besides the expr builtins it
// may call
//
//	head(path)      the node at an index path, as nil, a string or a list
//	listpath(path)  the nodes matched by a path such as "$[*][0]"
//	truth(path)     whether the node at a path is a non-empty leaf or branch
//	getenv(name)    an environment variable
package eval
