// Package pathutil provides the path helpers used while discovering configuration fragments:
// extension checks and the root-relative directory of a fragment file.
//
// Relative directories are logical paths. They always use forward slashes, carry no trailing
// slash, and are empty for files located directly in the root.
package pathutil
