package diagnostic

import (
	"fmt"

	"github.com/gongahkia/yuho-sub002/token"
)

// Diagnostic is the common interface of an error or a warning that happened
// in any step of the compilation process.
type Diagnostic interface {
	// Severity of the diagnostic.
	Severity() Severity
	// Msg of the diagnostic
	Msg() string
	// StartLine is the first line in the code region. Returns -1 if there is
	// no code region in the diagnostic.
	StartLine() int64
	// Line where the error happened
	Line() int64
	// Column where the error happened
	Column() int64
	// HasRegion reports whether the diagnostic contains a region of code.
	HasRegion() bool
	// Lines with the region of the diagnosed code.
	Lines() []string
}

// Msg is a human-readable message of a diagnostic.
type Msg interface {
	fmt.Stringer
}

type regionDiagnostic struct {
	severity Severity
	msg      Msg
	startPos *token.Position
	pos      *token.Position
	lines    []string
}

// NewRegionDiagnostic creates a new diagnostic for a specific region of the
// source code.
func NewRegionDiagnostic(severity Severity, msg Msg, start, pos *token.Position, region []string) Diagnostic {
	return &regionDiagnostic{severity, msg, start, pos, region}
}

func (d *regionDiagnostic) Severity() Severity { return d.severity }
func (d *regionDiagnostic) Msg() string        { return d.msg.String() }
func (d *regionDiagnostic) Line() int64        { return int64(d.pos.Line) }
func (d *regionDiagnostic) StartLine() int64   { return int64(d.startPos.Line) }
func (d *regionDiagnostic) Column() int64      { return int64(d.pos.Column) }
func (d *regionDiagnostic) HasRegion() bool    { return true }
func (d *regionDiagnostic) Lines() []string    { return d.lines }

type msgDiagnostic struct {
	severity Severity
	msg      Msg
}

// NewMsgDiagnostic creates a new diagnostic that is not for a specific region
// of the source code.
func NewMsgDiagnostic(severity Severity, msg Msg) Diagnostic {
	return &msgDiagnostic{severity, msg}
}

func (d *msgDiagnostic) Severity() Severity { return d.severity }
func (d *msgDiagnostic) Msg() string        { return d.msg.String() }
func (d *msgDiagnostic) Line() int64        { return 0 }
func (d *msgDiagnostic) StartLine() int64   { return -1 }
func (d *msgDiagnostic) Column() int64      { return 0 }
func (d *msgDiagnostic) HasRegion() bool    { return false }
func (d *msgDiagnostic) Lines() []string    { return nil }
