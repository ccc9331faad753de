package nscache

import (
	"errors"

	"github.com/unkn0wn-root/nscache/document"
)

var (
	// ErrEmptyKey is returned by Check and Remove, which need a key.
	ErrEmptyKey = errors.New("nscache: key is required")
	// ErrRootNotDocument is returned by Set("", v) when v is not a document.
	ErrRootNotDocument = document.ErrRootNotDocument
)
