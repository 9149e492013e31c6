package resolve

import (
	"fmt"
	"strings"
)

// ModuleNotFoundError is returned when the module named by a
// referencing declaration cannot be found in any search path.
type ModuleNotFoundError struct {
	// Module that could not be found.
	Module string
	// Importer is the module whose referencing declaration failed.
	Importer string
	// Tried is the list of paths that were searched.
	Tried []string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf(
		"cannot find module %q referenced from %q, tried: %s",
		e.Module,
		e.Importer,
		strings.Join(e.Tried, ", "),
	)
}

// CircularImportError is returned when modules reference each other in
// a cycle. Cycle holds the whole chain, beginning and ending with the
// same module.
type CircularImportError struct {
	Cycle []string
}

func (e *CircularImportError) Error() string {
	return fmt.Sprintf("circular import: %s", strings.Join(e.Cycle, " -> "))
}

// MissingSymbolError is returned when a referencing declaration asks
// for a symbol the module does not export.
type MissingSymbolError struct {
	// Symbol that was requested.
	Symbol string
	// Module the symbol was requested from.
	Module string
	// Available is the sorted list of symbols the module does export.
	Available []string
}

func (e *MissingSymbolError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("module %q does not export %q, it exports nothing", e.Module, e.Symbol)
	}
	return fmt.Sprintf(
		"module %q does not export %q, it exports: %s",
		e.Module,
		e.Symbol,
		strings.Join(e.Available, ", "),
	)
}

// DuplicateExportError is returned when an imported symbol collides
// with another symbol already visible in the importing module.
type DuplicateExportError struct {
	// Symbol that collides.
	Symbol string
	// Modules are the two modules that provide it.
	Modules [2]string
}

func (e *DuplicateExportError) Error() string {
	return fmt.Sprintf(
		"symbol %q is provided by both %q and %q",
		e.Symbol,
		e.Modules[0],
		e.Modules[1],
	)
}
