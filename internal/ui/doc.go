// Package ui confirms destructive export operations with the user.
package ui
