// Package core holds the pieces shared by every container package: the
// element constraint, the error taxonomy, the capacity growth rule and a
// few slice helpers.
package core
