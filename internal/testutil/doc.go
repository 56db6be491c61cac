// Package testutil provides mock collaborators shared by tests.
package testutil
