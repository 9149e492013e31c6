package parser

import (
	"github.com/gongahkia/yuho-sub002/diagnostic"
	"github.com/gongahkia/yuho-sub002/source"
)

type Session struct {
	*diagnostic.Diagnoser
	*source.CodeMap
}

func NewSession(d *diagnostic.Diagnoser, cm *source.CodeMap) *Session {
	return &Session{d, cm}
}
